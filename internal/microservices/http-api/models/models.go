package models

// All returns every model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&RefreshToken{},
		&Ticket{},
		&Review{},
		&UserFollows{},
		&UserBlock{},
	}
}
