package domain

var Tables = []interface{}{
	// Accounts
	&User{},
	&AuthLog{},
	// Catalog
	&Product{},
	&ProductImage{},
}
