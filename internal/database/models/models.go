package models

// All returns every model in migration order, parents before children
func All() []interface{} {
	return []interface{}{
		&Institution{},
		&School{},
		&Class{},
		&License{},
		&Role{},
		&Permission{},
		&RolePermission{},
		&User{},
	}
}
