package model

import "time"

// Role names accepted by the platform.  Roles are stored as plain
// strings in the `users.role` column and carried in the JWT "role"
// claim.  Admins manage users and stores, store owners view the
// dashboard for their store, and normal users submit ratings.
const (
    RoleAdmin      = "admin"       // platform administrator
    RoleStoreOwner = "store_owner" // owns a store and sees its ratings
    RoleUser       = "user"        // regular rating-submitting user
)

// ValidRole reports whether the given role name is one of the
// accepted platform roles.
func ValidRole(role string) bool {
    switch role {
    case RoleAdmin, RoleStoreOwner, RoleUser:
        return true
    }
    return false
}

// User represents an application user record as stored in the
// `users` table.  Each field corresponds to a column in the
// database.  The json tags are omitted here because these structs
// are primarily used internally by the repository layer; handlers
// define separate response types with appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Address      – postal address of the user.
//  Role         – role name (admin, store_owner or user).
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Name         string    // users.name
    Email        string    // users.email
    PasswordHash string    // users.password
    Address      string    // users.address
    Role         string    // users.role
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}
