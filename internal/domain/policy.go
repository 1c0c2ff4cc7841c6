package domain

import "github.com/jhoicas/datanova-api/internal/domain/entity"

// Resource identifica un tipo de entidad para la tabla de permisos.
type Resource string

const (
	ResourceUser        Resource = "user"
	ResourceCategory    Resource = "category"
	ResourceWorkflow    Resource = "workflow"
	ResourceEmployee    Resource = "employee"
	ResourceProduct     Resource = "product"
	ResourceSale        Resource = "sale"
	ResourcePerformance Resource = "perfoEmp"
	ResourceLog         Resource = "log"
)

// Action es una mutación sujeta a política.
type Action string

const (
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Rule dice quién puede mutar un recurso.
type Rule int

const (
	// RuleOwnerOrAdmin: el dueño del registro o un ADMIN.
	RuleOwnerOrAdmin Rule = iota
	// RuleAnyCaller: cualquier llamador autenticado, sin chequeo de dueño.
	RuleAnyCaller
	// RuleDenied: la operación no existe (append-only).
	RuleDenied
)

// Actor es el usuario autenticado que ejecuta la operación.
type Actor struct {
	UserID string
	Role   string
}

// IsAdmin indica si el actor tiene rol ADMIN.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// Policies es la tabla única de permisos de mutación.
// Sale, PerformanceRecord y Category no verifican dueño: es el comportamiento
// heredado y queda explícito aquí (ver DESIGN.md, pregunta abierta 1).
// Log es append-only: nadie, ni ADMIN, lo modifica o borra, y el router no
// expone PUT ni DELETE para /api/log.
var Policies = map[Resource]map[Action]Rule{
	ResourceUser:        {ActionUpdate: RuleOwnerOrAdmin, ActionDelete: RuleOwnerOrAdmin},
	ResourceWorkflow:    {ActionUpdate: RuleOwnerOrAdmin, ActionDelete: RuleOwnerOrAdmin},
	ResourceEmployee:    {ActionUpdate: RuleOwnerOrAdmin, ActionDelete: RuleOwnerOrAdmin},
	ResourceProduct:     {ActionUpdate: RuleOwnerOrAdmin, ActionDelete: RuleOwnerOrAdmin},
	ResourceSale:        {ActionUpdate: RuleAnyCaller, ActionDelete: RuleAnyCaller},
	ResourcePerformance: {ActionUpdate: RuleAnyCaller, ActionDelete: RuleAnyCaller},
	ResourceCategory:    {ActionUpdate: RuleAnyCaller, ActionDelete: RuleAnyCaller},
	ResourceLog:         {ActionUpdate: RuleDenied, ActionDelete: RuleDenied},
}

// Authorize devuelve ErrForbidden si actor no puede aplicar action sobre un
// registro de res cuyo dueño es ownerID. Recurso o acción desconocidos se niegan.
func Authorize(res Resource, action Action, ownerID string, actor Actor) error {
	rule, ok := Policies[res][action]
	if !ok {
		return ErrForbidden
	}
	switch rule {
	case RuleAnyCaller:
		return nil
	case RuleOwnerOrAdmin:
		if actor.IsAdmin() || (actor.UserID != "" && actor.UserID == ownerID) {
			return nil
		}
	}
	return ErrForbidden
}
