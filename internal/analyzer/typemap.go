package analyzer

import "github.com/toyz/apiscan/internal/models"

// javaTypes maps Java parameter type tokens to schema types. Owned by the
// analyzer and never mutated after init; unknown tokens fall back to string.
var javaTypes = map[string]models.SchemaType{
	"String":        models.TypeString,
	"int":           models.TypeInteger,
	"Integer":       models.TypeInteger,
	"long":          models.TypeInteger,
	"Long":          models.TypeInteger,
	"short":         models.TypeInteger,
	"Short":         models.TypeInteger,
	"float":         models.TypeNumber,
	"Float":         models.TypeNumber,
	"double":        models.TypeNumber,
	"Double":        models.TypeNumber,
	"boolean":       models.TypeBoolean,
	"Boolean":       models.TypeBoolean,
	"Date":          models.TypeString,
	"LocalDate":     models.TypeString,
	"LocalDateTime": models.TypeString,
	"UUID":          models.TypeString,
}

// mapJavaType maps a Java type token to its schema type
func mapJavaType(token string) models.SchemaType {
	if schemaType, ok := javaTypes[token]; ok {
		return schemaType
	}
	return models.TypeString
}
