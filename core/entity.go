package core

// Entity is a unique identifier for an entity
// Zero is never issued and marks "no entity"
type Entity uint64

// NoEntity is the zero entity
const NoEntity Entity = 0
