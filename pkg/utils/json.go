package utils

import (
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	if reflect.TypeOf(in) == reflect.TypeOf([]byte{}) {
		var decoded any
		if err := json.Unmarshal(in.([]byte), &decoded); err != nil {
			fmt.Println(err)
			return ""
		}
		in = decoded
	}

	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		fmt.Println(err)
		return ""
	}

	return string(buffer)
}
