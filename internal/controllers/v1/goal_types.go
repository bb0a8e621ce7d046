package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name         string          `json:"name" example:"Nouvelle voiture"`                       // Name of the goal
	TargetAmount decimal.Decimal `json:"targetAmount" example:"15000" minimum:"0" default:"0"`  // The amount needed to reach the goal
	Color        string          `json:"color" example:"bg-emerald-500" default:"bg-slate-900"` // Color class used to display the goal
	IconKey      string          `json:"iconKey" example:"Car" default:"Target"`                // Key of the icon used to display the goal
}

// input returns the ledger input for the API representation of the editable fields
func (editable GoalEditable) input() ledger.GoalInput {
	return ledger.GoalInput{
		Name:         editable.Name,
		TargetAmount: editable.TargetAmount,
		Color:        editable.Color,
		IconKey:      editable.IconKey,
	}
}

type GoalLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                     // The goal itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?goal=438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // Transactions completing the goal
	Completion   string `json:"completion" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/completion"`    // Endpoint to complete the goal
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Status models.GoalStatus `json:"status" example:"active"` // The goal is completed when the purchase has been recorded
	Links  GoalLinks         `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:         model.Name,
			TargetAmount: model.TargetAmount,
			Color:        model.Color,
			IconKey:      model.IconKey,
		},
		Status: model.Status,
		Links: GoalLinks{
			Self:         fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?goal=%s", url, model.ID),
			Completion:   fmt.Sprintf("%s/v1/goals/%s/completion", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                                          // List of resources
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created resources
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

type GoalQueryFilter struct {
	Status models.GoalStatus `form:"status"` // Status of the goal
}
