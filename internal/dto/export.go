package dto

// ExportData is the full snapshot of a trip for client-side report
// generation: every figure is precomputed so the consumer only renders.
type ExportData struct {
	Trip      ExportTrip       `json:"trip"`
	Members   []ExportMember   `json:"members"`
	Expenses  []ExportExpense  `json:"expenses"`
	Proposals []ExportProposal `json:"proposals"`
	Tasks     []ExportTask     `json:"tasks"`
}

type ExportTrip struct {
	Title           string  `json:"title"`
	Destination     string  `json:"destination"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Budget          float64 `json:"budget"`
	TotalSpent      float64 `json:"total_spent"`
	RemainingBudget float64 `json:"remaining_budget"`
}

type ExportMember struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	TotalPaid float64 `json:"total_paid"`
	TotalOwed float64 `json:"total_owed"`
	Net       float64 `json:"net"`
}

type ExportExpense struct {
	Description  string   `json:"description"`
	Amount       float64  `json:"amount"`
	Date         string   `json:"date"`
	Category     string   `json:"category"`
	PaidBy       string   `json:"paid_by"`
	Participants []string `json:"participants"`
}

type ExportProposal struct {
	Title    string `json:"title"`
	Status   string `json:"status"`
	YesVotes int    `json:"yes_votes"`
	NoVotes  int    `json:"no_votes"`
}

type ExportTask struct {
	Title      string  `json:"title"`
	Completed  bool    `json:"completed"`
	AssignedTo *string `json:"assigned_to"`
	DueDate    *string `json:"due_date"`
}
