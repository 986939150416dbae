package repository

import "github.com/aliskhannn/shape-quiz-generator/internal/domain/entities"

func variationNumber(fields []string) string {
	if len(fields) <= entities.ColVariationNumber {
		return ""
	}
	return fields[entities.ColVariationNumber]
}
