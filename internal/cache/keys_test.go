package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "quiz",
			objectType:  "questions",
			identifier:  "career",
			expectedKey: "cognitivepathways:quiz:questions:career",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "quiz",
			objectType:  "questions",
			identifier:  "foundational",
			paramsKey:   []string{},
			expectedKey: "cognitivepathways:quiz:questions:foundational",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "courses",
			objectType:  "list",
			identifier:  "engineering",
			paramsKey:   []string{"page1", "limit50"},
			expectedKey: "cognitivepathways:courses:list:engineering:page1_limit50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestKeyPattern(t *testing.T) {
	if got := KeyPattern(QuizServiceName, QuestionsObjectType); got != "cognitivepathways:quiz:questions:*" {
		t.Errorf("KeyPattern() = %v", got)
	}
}

func TestIdentifierFromKey(t *testing.T) {
	key := GenerateCacheKey(QuizServiceName, QuestionsObjectType, "career")
	if got := IdentifierFromKey(key); got != "career" {
		t.Errorf("IdentifierFromKey() = %v, want career", got)
	}
	if got := IdentifierFromKey("short:key"); got != "" {
		t.Errorf("IdentifierFromKey() = %v, want empty", got)
	}
}
