package rbac

// Simple default policy. Guests can do everything a quiz taker needs;
// admin is unrestricted.
var RolePermissions = map[string][]string{
	"guest": {
		"quiz:generate",
		"quiz:grade",
		"feeds:view",
		"attempt:view-own",
		"attempt:delete-own",
	},
	"admin": {
		"*", // everything
	},
}
