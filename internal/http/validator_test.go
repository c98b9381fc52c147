package http

import (
	"strings"
	"testing"
)

type TestStruct struct {
	Email      string `validate:"required,email"`
	Username   string `validate:"required,min=3,max=50"`
	Password   string `validate:"required,password_strength"`
	Age        string `validate:"omitempty,age_bucket"`
	Gender     string `validate:"omitempty,gender"`
	EntityType string `validate:"omitempty,entity_type"`
}

func TestValidateStruct_ValidInput(t *testing.T) {
	s := TestStruct{
		Email:      "test@example.com",
		Username:   "testuser",
		Password:   "Test123!@#",
		Age:        "25_to_29",
		Gender:     "female",
		EntityType: "tv_show",
	}

	errors := ValidateStruct(s)
	if len(errors) != 0 {
		t.Errorf("Expected no validation errors, got %d: %v", len(errors), errors)
	}
}

func TestValidateStruct_RequiredFields(t *testing.T) {
	s := TestStruct{}

	errors := ValidateStruct(s)
	if len(errors) == 0 {
		t.Fatal("Expected validation errors for required fields")
	}

	hasEmailError := false
	hasUsernameError := false
	for _, err := range errors {
		if err.Field == "email" && strings.Contains(err.Message, "required") {
			hasEmailError = true
		}
		if err.Field == "username" && strings.Contains(err.Message, "required") {
			hasUsernameError = true
		}
	}

	if !hasEmailError {
		t.Error("Expected email required error")
	}
	if !hasUsernameError {
		t.Error("Expected username required error")
	}
}

func TestValidateStruct_AgeBucket(t *testing.T) {
	testCases := []struct {
		age   string
		valid bool
	}{
		{"24_and_younger", true},
		{"25_to_29", true},
		{"30_to_34", true},
		{"35_to_44", true},
		{"45_to_54", true},
		{"55_and_older", true},
		{"", true}, // omitempty
		{"18_to_24", false},
		{"24", false},
		{"older", false},
	}

	for _, tc := range testCases {
		s := TestStruct{
			Email:    "test@example.com",
			Username: "testuser",
			Password: "Test123!@#",
			Age:      tc.age,
		}

		errors := ValidateStruct(s)
		hasAgeError := false
		for _, err := range errors {
			if err.Field == "age" {
				hasAgeError = true
			}
		}

		if tc.valid && hasAgeError {
			t.Errorf("Age %q should be valid", tc.age)
		}
		if !tc.valid && !hasAgeError {
			t.Errorf("Age %q should be invalid", tc.age)
		}
	}
}

func TestValidateStruct_Gender(t *testing.T) {
	for _, g := range []string{"male", "female", ""} {
		s := TestStruct{
			Email:    "test@example.com",
			Username: "testuser",
			Password: "Test123!@#",
			Gender:   g,
		}
		if errs := ValidateStruct(s); len(errs) != 0 {
			t.Errorf("Gender %q should be valid, got %v", g, errs)
		}
	}

	s := TestStruct{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "Test123!@#",
		Gender:   "other",
	}
	if errs := ValidateStruct(s); len(errs) == 0 {
		t.Error("Expected gender validation error")
	}
}

func TestValidateStruct_EntityType(t *testing.T) {
	for _, et := range []string{"book", "movie", "tv_show", "place"} {
		s := TestStruct{
			Email:      "test@example.com",
			Username:   "testuser",
			Password:   "Test123!@#",
			EntityType: et,
		}
		if errs := ValidateStruct(s); len(errs) != 0 {
			t.Errorf("Entity type %q should be valid, got %v", et, errs)
		}
	}

	s := TestStruct{
		Email:      "test@example.com",
		Username:   "testuser",
		Password:   "Test123!@#",
		EntityType: "podcast",
	}
	if errs := ValidateStruct(s); len(errs) == 0 {
		t.Error("Expected entity_type validation error")
	}
}

func TestValidateStruct_PasswordStrength(t *testing.T) {
	testCases := []struct {
		password string
		valid    bool
	}{
		{"Test123!@#", true},
		{"Str0ng!Pass", true},
		{"short1!", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoNumbers!!", false},
		{"NoSpecial123", false},
	}

	for _, tc := range testCases {
		s := TestStruct{
			Email:    "test@example.com",
			Username: "testuser",
			Password: tc.password,
		}

		errors := ValidateStruct(s)
		hasPasswordError := false
		for _, err := range errors {
			if err.Field == "password" {
				hasPasswordError = true
			}
		}

		if tc.valid && hasPasswordError {
			t.Errorf("Password %q should be valid", tc.password)
		}
		if !tc.valid && !hasPasswordError {
			t.Errorf("Password %q should be invalid", tc.password)
		}
	}
}
