package cmd

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	EcotrackBaseURL    string
	EcotrackAPIToken   string
	JWTSecret          string
	StatusSyncEnabled  bool
	StatusSyncSchedule string
}
