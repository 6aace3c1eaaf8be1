package database

type Config struct {
	FilePath string `envconfig:"IMPROV_DB_FILE_PATH" default:"improv.db"`
}
