package models

import (
	"encoding/json"
	"fmt"

	"github.com/derin/uniportal/internal/pkg/apperrors"
)

// Principal is the tagged union over Student, Faculty and Admin. The
// concrete type is recovered from the serialized role field.
type Principal interface {
	Base() *User
	Clone() Principal
}

// DecodePrincipal deserializes a principal snapshot, dispatching on the
// role discriminant. Unknown roles are rejected so a session can never
// rehydrate into an unrecognized shape.
func DecodePrincipal(data []byte) (Principal, error) {
	var probe struct {
		Role Role `json:"role"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to probe principal role: %w", err)
	}

	switch probe.Role {
	case RoleStudent:
		var s Student
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to decode student principal: %w", err)
		}
		return &s, nil
	case RoleFaculty:
		var f Faculty
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode faculty principal: %w", err)
		}
		return &f, nil
	case RoleAdmin:
		var a Admin
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("failed to decode admin principal: %w", err)
		}
		return &a, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownRole, probe.Role)
	}
}

// EncodePrincipal serializes a principal to its snapshot form.
func EncodePrincipal(p Principal) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode principal: %w", err)
	}
	return data, nil
}
