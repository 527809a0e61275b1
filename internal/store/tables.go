package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/internal/assessment"
)

var (
	// traineesColumns holds the columns for the "trainees" table.
	traineesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "date_of_birth", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	traineesTable = &schema.Table{
		Name:       "trainees",
		Columns:    traineesColumns,
		PrimaryKey: []*schema.Column{traineesColumns[0]},
	}

	// assessmentsColumns holds the columns for the "assessments" table.
	// The autoincrement id preserves insertion order.
	assessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: kindEnums()},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "trainee_id", Type: field.TypeString},
	}
	assessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    assessmentsColumns,
		PrimaryKey: []*schema.Column{assessmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assessments_trainees_assessments",
				Columns:    []*schema.Column{assessmentsColumns[5]},
				RefColumns: []*schema.Column{traineesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assessment_trainee_id",
				Unique:  false,
				Columns: []*schema.Column{assessmentsColumns[5]},
			},
			{
				Name:    "assessment_trainee_id_name",
				Unique:  false,
				Columns: []*schema.Column{assessmentsColumns[5], assessmentsColumns[1]},
			},
		},
	}

	tables = []*schema.Table{
		traineesTable,
		assessmentsTable,
	}
)

func init() {
	assessmentsTable.ForeignKeys[0].RefTable = traineesTable
}

func kindEnums() []string {
	kinds := assessment.Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
