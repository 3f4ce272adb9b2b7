package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	return exampleFields(reflect.TypeOf(Settings{}))
}

func exampleFields(t reflect.Type) map[string]any {
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"quit": "q",
			"help": []string{"h", "?"},
		}
	}

	if t.Kind() == reflect.Ptr {
		elemType := t.Elem()

		switch elemType.Kind() {
		case reflect.Struct:
			return exampleFields(elemType)
		case reflect.Bool:
			return fieldName == "sound_enabled"
		case reflect.Int:
			switch fieldName {
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "flash_interval_ms":
				return 500
			case "max_log_files":
				return 1000
			case "port":
				return 2222
			case "green":
				return 17
			case "yellow":
				return 27
			case "red":
				return 22
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "broker":
			return "tcp://localhost:1883"
		case "chip":
			return "gpiochip0"
		case "client_id":
			return "stoplight-office"
		case "host":
			return "0.0.0.0"
		case "topic":
			return DefaultTopic
		default:
			return "example"
		}
	}

	return nil
}
