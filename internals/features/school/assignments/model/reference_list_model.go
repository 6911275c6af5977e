package model

import "github.com/lib/pq"

// ReferenceListModel holds one dropdown reference list (periods, classes,
// absent/substitute teacher names) as an ordered text[] column. Order in the
// array is the order the form shows.
type ReferenceListModel struct {
	ReferenceListKey    string         `gorm:"primaryKey;column:reference_list_key"  json:"reference_list_key"`
	ReferenceListValues pq.StringArray `gorm:"type:text[];column:reference_list_values" json:"reference_list_values"`
}

func (ReferenceListModel) TableName() string { return "reference_lists" }
