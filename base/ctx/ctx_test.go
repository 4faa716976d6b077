package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	c := WithValue(Background(), "requestID", "abc")
	ts.Equal("abc", c.Value("requestID"))
	ts.Nil(c.Value("missing"))
}

func (ts *testsuite) TestWithValues() {
	c := WithValues(Background(), map[string]interface{}{
		"wallet": "w",
		"nft":    "n",
	})
	ts.Equal("w", c.Value("wallet"))
	ts.Equal("n", c.Value("nft"))
}

func (ts *testsuite) TestWithValueDoesNotLeakToParent() {
	parent := WithValue(Background(), "a", 1)
	child := WithValue(parent, "b", 2)
	ts.Nil(parent.Value("b"))
	ts.Equal(1, child.Value("a"))
}

func (ts *testsuite) TestWithTimeout() {
	c, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()
	select {
	case <-c.Done():
		ts.Equal(context.DeadlineExceeded, c.Err())
	case <-time.After(time.Second):
		ts.Fail("deadline not reached")
	}
}

func (ts *testsuite) TestWithCancelKeepsValues() {
	parent := WithValue(Background(), "requestID", "r1")
	c, cancel := WithCancel(parent)
	ts.Equal("r1", c.Value("requestID"))
	cancel()
	<-c.Done()
	ts.Equal(context.Canceled, c.Err())
}

func (ts *testsuite) TestFrom() {
	plain := context.WithValue(context.Background(), ctxKey("k"), "v")
	c := From(plain)
	ts.Equal("v", c.Value("k"))

	wrapped := WithValue(Background(), "x", "y")
	ts.Equal("y", From(wrapped).Value("x"))
}
