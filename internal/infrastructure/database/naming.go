package database

import (
	"fmt"

	"gorm.io/gorm/schema"
)

// NamingStrategy names foreign keys fk_<table>_<column>_<referenced_table>,
// e.g. fk_reviews_customer_id_customers.
type NamingStrategy struct {
	schema.NamingStrategy
}

func (ns NamingStrategy) RelationshipFKName(rel schema.Relationship) string {
	if len(rel.References) == 0 || rel.References[0].ForeignKey == nil {
		return ns.NamingStrategy.RelationshipFKName(rel)
	}

	var table, referenced string
	switch rel.Type {
	case schema.BelongsTo:
		table, referenced = rel.Schema.Table, rel.FieldSchema.Table
	case schema.HasOne, schema.HasMany:
		table, referenced = rel.FieldSchema.Table, rel.Schema.Table
	default:
		return ns.NamingStrategy.RelationshipFKName(rel)
	}

	return fmt.Sprintf("fk_%s_%s_%s", table, rel.References[0].ForeignKey.DBName, referenced)
}
