package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"                           // Standard errors package
	"github.com/mcncl/gopointer/internal/errors" // Custom errors package
	"github.com/mcncl/gopointer/internal/models"
	"github.com/tidwall/gjson"
)

// Parse reads a single JSON document from reader into the ordered model.
// Numbers are kept as json.Number with their original text.
func Parse(reader io.Reader) (models.JSONValue, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewInputError("failed to read input", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses a single JSON document
func ParseBytes(data []byte) (models.JSONValue, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.NewParsingError(
			fmt.Sprintf("invalid JSON near offset %d", invalidOffset(data)),
			errors.ErrInvalidJSON,
		)
	}
	return convert(gjson.ParseBytes(data)), nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.JSONValue, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return ParseBytes([]byte(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.JSONValue, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}

// convert builds model values from an already validated gjson result.
// ForEach walks object members in document order; a repeated key keeps
// its first position and its last value.
func convert(res gjson.Result) models.JSONValue {
	switch res.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return json.Number(res.Raw)
	case gjson.String:
		return res.String()
	}

	if res.IsArray() {
		arr := models.NewJSONArray()
		res.ForEach(func(_, value gjson.Result) bool {
			arr.Append(convert(value))
			return true
		})
		return arr
	}

	obj := models.NewJSONObject()
	res.ForEach(func(key, value gjson.Result) bool {
		obj.Set(key.String(), convert(value))
		return true
	})
	return obj
}

// invalidOffset locates the first syntax error using encoding/json,
// which reports offsets that gjson does not.
func invalidOffset(data []byte) int64 {
	var v interface{}
	var syntaxError *json.SyntaxError
	if err := json.Unmarshal(data, &v); stderrors.As(err, &syntaxError) {
		return syntaxError.Offset
	}
	return int64(len(data))
}
