// internal/application/demodata/users.go
package demodata

// UserSpec is one demo account: auth identity plus the profile fields of
// its user document. All demo accounts share one password, resolved at
// runtime from Secret Manager.
type UserSpec struct {
	Email           string
	Name            string
	WeeklyBudget    float64
	IsAdmin         bool
	PreferredStores []string
}

// DemoUsers is the demo household roster.
var DemoUsers = []UserSpec{
	{
		Email:           "alex@demo.homecart.app",
		Name:            "Alex",
		WeeklyBudget:    350,
		IsAdmin:         true,
		PreferredStores: []string{"FreshMart", "Corner Pharm"},
	},
	{
		Email:           "dana@demo.homecart.app",
		Name:            "Dana",
		WeeklyBudget:    200,
		PreferredStores: []string{"FreshMart"},
	},
	{
		Email:           "noam@demo.homecart.app",
		Name:            "Noam",
		WeeklyBudget:    120,
		PreferredStores: []string{"FreshMart"},
	},
}

// LegacyUserDocIDs are hand-written user doc ids an early revision of the
// seeding script created before doc ids were tied to Auth UIDs. The user
// creation script deletes them so the collection holds only UID-keyed docs.
var LegacyUserDocIDs = []string{"demo_user_1", "demo_user_2", "demo_user_3"}
