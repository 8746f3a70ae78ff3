package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"object_explorer/internal/domain/entity"
	"object_explorer/internal/pkg/utils"
)

const (
	methodOwnedByAddress = "sui_getObjectsOwnedByAddress"
	methodOwnedByObject  = "sui_getObjectsOwnedByObject"
	methodGetObject      = "sui_getObject"
)

// suiObjectInfo is one entry of an ownership listing.
type suiObjectInfo struct {
	ObjectID string      `json:"objectId"`
	Version  json.Number `json:"version"`
	Digest   string      `json:"digest"`
	Type     string      `json:"type"`
}

// suiGetObjectResponse is the sui_getObject result. Details is an object
// for existing and deleted objects and a bare id string otherwise.
type suiGetObjectResponse struct {
	Status  string          `json:"status"`
	Details json.RawMessage `json:"details"`
}

type suiObjectRef struct {
	ObjectID string      `json:"objectId"`
	Version  json.Number `json:"version"`
	Digest   string      `json:"digest"`
}

type suiObjectData struct {
	DataType     string            `json:"dataType"` // moveObject | package
	Type         string            `json:"type"`
	Fields       map[string]any    `json:"fields"`
	Disassembled map[string]string `json:"disassembled"`
}

type suiObjectDetails struct {
	Data      suiObjectData `json:"data"`
	Reference suiObjectRef  `json:"reference"`
}

func (i suiObjectInfo) toReference() entity.Reference {
	return entity.Reference{
		ObjectID: i.ObjectID,
		Version:  i.Version.String(),
		Digest:   i.Digest,
		Type:     i.Type,
	}
}

// decodeObjectResponse turns a raw sui_getObject result into an ObjectRecord.
// requestedID is used when the node only echoes a status.
func decodeObjectResponse(raw json.RawMessage, requestedID string) (entity.ObjectRecord, error) {
	var resp suiGetObjectResponse
	if err := utils.JSON.Unmarshal(raw, &resp); err != nil {
		return entity.ObjectRecord{}, fmt.Errorf("decode sui_getObject result for %s: %w", requestedID, err)
	}

	rec := entity.ObjectRecord{ID: requestedID, Status: entity.ObjectStatus(resp.Status)}
	if !rec.Exists() {
		return rec, nil
	}

	var details suiObjectDetails
	if err := utils.JSON.Unmarshal(resp.Details, &details); err != nil {
		return entity.ObjectRecord{}, fmt.Errorf("decode object details for %s: %w", requestedID, err)
	}
	if details.Reference.ObjectID != "" {
		rec.ID = details.Reference.ObjectID
	}
	rec.Version = details.Reference.Version.String()
	rec.Type = details.Data.Type
	rec.Fields = details.Data.Fields
	if strings.EqualFold(details.Data.DataType, "package") {
		rec.Modules = details.Data.Disassembled
		if rec.Modules == nil {
			rec.Modules = map[string]string{}
		}
	}
	return rec, nil
}
