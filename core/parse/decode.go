package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/leofalp/jsonalchemist/core/transform"
)

// ParseStringAs converts content into T.
//
// Strings, booleans and numbers are converted directly; a JSON string literal
// such as "\"abc\"" is unquoted first. Every other type is unmarshaled as
// JSON. When the content is not strict JSON the local recovery chains are
// tried in order, and as a last resort the content goes through jsonrepair.
//
//	type Person struct {
//	    Name string `json:"name"`
//	    Age  int    `json:"age"`
//	}
//
//	person, err := ParseStringAs[Person](`{'name': 'John', 'age': 30} // from logs`)
//	n, err := ParseStringAs[int]("42")
func ParseStringAs[T any](content string) (T, error) {
	var result T
	target := reflect.ValueOf(&result).Elem()
	trimmed := strings.TrimSpace(content)

	switch target.Kind() {
	case reflect.String:
		if unquoted, err := strconv.Unquote(trimmed); err == nil && strings.HasPrefix(trimmed, `"`) {
			target.SetString(unquoted)
		} else {
			target.SetString(content)
		}
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(trimmed)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		target.SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(trimmed, target.Type().Bits())
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		target.SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(trimmed, 10, target.Type().Bits())
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		target.SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(trimmed, 10, target.Type().Bits())
		if err != nil {
			return result, fmt.Errorf("failed to parse content as uint: %w", err)
		}
		target.SetUint(val)
		return result, nil
	}

	firstErr := json.Unmarshal([]byte(content), &result)
	if firstErr == nil {
		return result, nil
	}

	for _, chain := range transform.DefaultChains(transform.CommentHeuristic)[1:] {
		candidate := chain.Apply(content)
		if !Valid(candidate) {
			continue
		}
		var out T
		if err := json.Unmarshal([]byte(candidate), &out); err == nil {
			return out, nil
		}
	}

	repaired, err := jsonrepair.JSONRepair(content)
	if err != nil {
		return result, fmt.Errorf("failed to unmarshal content: %w (repair failed: %v)", firstErr, err)
	}
	var out T
	if err := json.Unmarshal([]byte(repaired), &out); err != nil {
		return result, fmt.Errorf("failed to unmarshal repaired content: %w", err)
	}
	return out, nil
}
