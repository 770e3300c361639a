package model

import "time"

// Store represents a registered store that users can rate.  Each
// store belongs to one owner with the store_owner role.  Stores
// are created by admin action only and are immutable afterwards.
// This struct corresponds to a row in the `stores` table.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the store.
//  Email     – contact email of the store.
//  Address   – postal address of the store.
//  OwnerID   – user ID of the store owner.
//  CreatedAt – timestamp when the store was created.
//  UpdatedAt – timestamp of last update.
type Store struct {
    ID        uint64    // stores.id
    Name      string    // stores.name
    Email     string    // stores.email
    Address   string    // stores.address
    OwnerID   uint64    // stores.owner_id
    CreatedAt time.Time // stores.created_at
    UpdatedAt time.Time // stores.updated_at
}
