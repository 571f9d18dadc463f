package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Google Maps proxies
	GoogleMapsAPIKey string `envconfig:"GOOGLE_MAPS_API_KEY"`
	MapsTimeoutSec   uint   `envconfig:"MAPS_TIMEOUT_SEC" default:"5"`

	// Attachment storage. Provider is either "graph" (Microsoft Graph drive)
	// or "s3".
	StorageProvider string `envconfig:"STORAGE_PROVIDER" default:"graph"`
	MaxUploadBytes  int64  `envconfig:"MAX_UPLOAD_BYTES" default:"33554432"`

	// Microsoft Graph storage
	GraphTenantID     string `envconfig:"GRAPH_TENANT_ID"`
	GraphClientID     string `envconfig:"GRAPH_CLIENT_ID"`
	GraphClientSecret string `envconfig:"GRAPH_CLIENT_SECRET"`
	GraphDriveID      string `envconfig:"GRAPH_DRIVE_ID"`

	// S3 storage
	StorageBucketName string `envconfig:"STORAGE_BUCKET_NAME" default:"valuation-photos"`
	S3PublicBaseURL   string `envconfig:"S3_PUBLIC_BASE_URL"`
}
