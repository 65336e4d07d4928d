package cmd

// Config carries every runtime setting, loaded from the environment by
// cmd/app. KafkaHost and MapboxToken may be empty: the app then degrades to
// a no-op event publisher and textual route fallbacks respectively.
type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	JWTSecret        string
	JWTIssuer        string
	JWTTTL           string
	KafkaHost        string
	KafkaEventsTopic string
	MapboxToken      string
	MapboxBaseURL    string
}
