package utils

import (
	"reflect"
	"testing"
)

func TestRemoveAccents(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"café", "cafe"},
		{"açúcar", "acucar"},
		{"São Paulo", "Sao Paulo"},
		{"résumé", "resume"},
		{"naïve", "naive"},
		{"piñata", "pinata"},
	}

	for _, test := range tests {
		result := RemoveAccents(test.input)
		if result != test.expected {
			t.Errorf("RemoveAccents(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"hello", []string{"hello"}},
		{"helloWorld", []string{"hello", "World"}},
		{"getUserById", []string{"get", "User", "By", "Id"}},
		{"XMLHttpRequest", []string{"XML", "Http", "Request"}},
		{"hello-world", []string{"hello", "world"}},
		{"hello_world", []string{"hello", "world"}},
		{"hello world", []string{"hello", "world"}},
		{"HELLO_WORLD", []string{"HELLO", "WORLD"}},
		{"1test", []string{"1", "test"}},
		{"int32", []string{"int", "32"}},
		{"user2name", []string{"user", "2", "name"}},
	}

	for _, test := range tests {
		result := SplitWords(test.input)
		if !reflect.DeepEqual(result, test.expected) {
			t.Errorf("SplitWords(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "Hello"},
		{"helloWorld", "HelloWorld"},
		{"listUserResources", "ListUserResources"},
		{"XMLHttpRequest", "XmlHttpRequest"},
		{"hello-world", "HelloWorld"},
		{"hello_world", "HelloWorld"},
		{"hello world", "HelloWorld"},
		{"HELLO_WORLD", "HelloWorld"},
		{"TEST", "Test"},
		{"1test", "1Test"},
		{"cobrança", "Cobranca"},
	}

	for _, test := range tests {
		result := ToPascalCase(test.input)
		if result != test.expected {
			t.Errorf("ToPascalCase(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"test", "test"},
		{"test-test", "testTest"},
		{"test test", "testTest"},
		{"Test", "test"},
		{"HELLO_WORLD", "helloWorld"},
		{"1test", "1Test"},
	}

	for _, test := range tests {
		result := ToCamelCase(test.input)
		if result != test.expected {
			t.Errorf("ToCamelCase(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"test", "test"},
		{"testTest", "test_test"},
		{"Test-Test", "test_test"},
		{"test test", "test_test"},
		{"HELLO_WORLD", "hello_world"},
		{"1test", "1_test"},
	}

	for _, test := range tests {
		result := ToSnakeCase(test.input)
		if result != test.expected {
			t.Errorf("ToSnakeCase(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestIdempotence(t *testing.T) {
	inputs := []string{"helloWorld", "Test-Test", "1test", "HELLO_WORLD"}
	for _, input := range inputs {
		once := ToPascalCase(input)
		if twice := ToPascalCase(once); twice != once {
			t.Errorf("ToPascalCase not idempotent for %q: %q != %q", input, twice, once)
		}
		onceCamel := ToCamelCase(input)
		if twice := ToCamelCase(onceCamel); twice != onceCamel {
			t.Errorf("ToCamelCase not idempotent for %q: %q != %q", input, twice, onceCamel)
		}
		onceSnake := ToSnakeCase(input)
		if twice := ToSnakeCase(onceSnake); twice != onceSnake {
			t.Errorf("ToSnakeCase not idempotent for %q: %q != %q", input, twice, onceSnake)
		}
	}
}
