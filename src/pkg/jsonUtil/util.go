package jsonUtil

import (
    "encoding/json"
)

// AnyToJson renders obj for log lines. Marshalling errors are swallowed and yield an empty string.
func AnyToJson(obj any) string {
    jsonData, _ := json.Marshal(obj)
    return string(jsonData)
}
