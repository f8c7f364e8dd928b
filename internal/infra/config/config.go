// internal/infra/config/config.go
package config

import "os"

// Config holds the environment-driven settings shared by every admin script.
// Scripts take no flags; everything comes from env vars with sane defaults.
type Config struct {
	ProjectID       string
	CredentialsFile string

	// Collection names (overridable mainly for staging projects)
	UsersCollection     string
	TemplatesCollection string
	ListsCollection     string
	InventoryCollection string
	ReceiptsCollection  string
	ProductsCollection  string

	// Demo environment
	DemoHouseholdID  string
	DemoPassword     string // fallback when Secret Manager is unavailable
	DemoPasswordName string // Secret Manager secret id

	// GCS bucket for product catalog backups
	BackupBucket string

	// Local products.json path for upload_products
	ProductsFile string
}

// Load reads the environment and returns a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "homecart-demo")

	return &Config{
		ProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		CredentialsFile: getenvDefault("FIREBASE_SERVICE_ACCOUNT", os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")),

		UsersCollection:     getenvDefault("USERS_COLLECTION", "users"),
		TemplatesCollection: getenvDefault("TEMPLATES_COLLECTION", "templates"),
		ListsCollection:     getenvDefault("LISTS_COLLECTION", "shopping_lists"),
		InventoryCollection: getenvDefault("INVENTORY_COLLECTION", "inventory"),
		ReceiptsCollection:  getenvDefault("RECEIPTS_COLLECTION", "receipts"),
		ProductsCollection:  getenvDefault("PRODUCTS_COLLECTION", "products"),

		DemoHouseholdID:  getenvDefault("DEMO_HOUSEHOLD_ID", "house_demo"),
		DemoPassword:     getenvDefault("DEMO_USER_PASSWORD", "Demo123!"),
		DemoPasswordName: getenvDefault("DEMO_PASSWORD_SECRET", "demo-user-password"),

		BackupBucket: os.Getenv("BACKUP_BUCKET"),

		ProductsFile: getenvDefault("PRODUCTS_FILE", "products.json"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
