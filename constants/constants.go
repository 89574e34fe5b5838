package constants

import "os"

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetSessionsTable() string {
	table := os.Getenv("SESSIONS_TABLE")
	if table != "" {
		return table
	}
	return "chordlab-sessions"
}

const DefaultServeAddr = ":8080"
