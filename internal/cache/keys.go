package cache

import "strings"

const (
	GlobalKeyPrefix = "cognitivepathways"

	QuizServiceName     = "quiz"
	QuestionsObjectType = "questions"
	keySeparator        = ":"
	paramsSeparator     = "_"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, keySeparator)
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, paramsSeparator)}, keySeparator)
	}
	return baseKey
}

// KeyPattern returns the SCAN pattern matching every key of an object type.
func KeyPattern(serviceName, objectType string) string {
	return GenerateCacheKey(serviceName, objectType, "*")
}

// IdentifierFromKey returns the identifier segment of a key built by GenerateCacheKey.
func IdentifierFromKey(key string) string {
	parts := strings.Split(key, keySeparator)
	if len(parts) < 4 {
		return ""
	}
	return parts[3]
}
