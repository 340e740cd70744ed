package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// idToString normaliza o _id de um documento para string. As coleções
// mais antigas usam ObjectID, as mais novas usam string.
func idToString(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprintf("%v", id)
	}
}

// idFilterValue faz o caminho inverso: um id em formato hex vira ObjectID
// para o filtro, qualquer outro valor é usado como está.
func idFilterValue(id string) interface{} {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}
