package mongoclient

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

var (
	ErrNotStruct = fmt.Errorf("patchable is not a struct")
)

// MakeBsonM turns a patch struct into a $set document. Nil pointers and zero
// values are skipped, non nil pointers are dereferenced.
func MakeBsonM(patchable interface{}) (bson.M, error) {
	val := reflect.ValueOf(patchable)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	bsonM := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		tag, err := bsoncodec.DefaultStructTagParser(val.Type().Field(i))
		if err != nil {
			return nil, err
		}

		switch {
		case tag.Skip, !field.CanInterface(), field.IsZero():
			continue
		case field.Kind() == reflect.Ptr:
			bsonM[tag.Name] = field.Elem().Interface()
		default:
			bsonM[tag.Name] = field.Interface()
		}
	}

	return bsonM, nil
}
