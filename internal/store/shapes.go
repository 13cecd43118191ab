package store

// Candidate payload shapes, ranked per entity kind. The ordering encodes
// deployment history: primary column names first, then legacy aliases, then
// degenerate minimal shapes that survive almost any schema. Shapes carrying
// user_id are skipped when no authenticated user is present so access-policy
// columns are never written as NULL.

type shapeDef struct {
	needsUser bool
	build     func() Record
}

func expandShapes(defs []shapeDef, hasUser bool) []Record {
	out := make([]Record, 0, len(defs))
	for _, d := range defs {
		if d.needsUser && !hasUser {
			continue
		}
		out = append(out, d.build())
	}
	return out
}

// ProjectIntent is the normalized create intent for a project. Title wins
// over Name; Budget wins over TargetBudget.
type ProjectIntent struct {
	UserID       string
	Title        string
	Name         string
	Description  string
	Location     string
	Budget       float64
	TargetBudget float64
	StartDate    string
	EndDate      string
	Status       string
}

// Projects write through a single canonical shape; the projects table is the
// one whose columns are under our control.
func projectShapes(userID, title, description, location string, budget float64, startDate, endDate, status string) []shapeDef {
	return []shapeDef{
		{needsUser: true, build: func() Record {
			return Record{
				"user_id":     userID,
				"title":       title,
				"description": orNil(description),
				"location":    orNil(location),
				"budget":      budget,
				"start_date":  orNil(startDate),
				"end_date":    orNil(endDate),
				"status":      status,
			}
		}},
	}
}

type TaskIntent struct {
	UserID     string
	ProjectID  string
	Title      string
	Priority   string
	AssignedTo string
	DueDate    string
	Status     string
}

func taskShapes(in TaskIntent) []shapeDef {
	pid, t := in.ProjectID, in.Title
	p, s := in.Priority, in.Status
	a, d := orNil(in.AssignedTo), orNil(in.DueDate)
	uid := in.UserID
	return []shapeDef{
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "title": t, "description": t, "priority": p, "assigned_to": a, "deadline": d, "status": s, "user_id": uid}
		}},
		{build: func() Record {
			return Record{"project_id": pid, "title": t, "description": t, "priority": p, "assigned_to": a, "deadline": d, "status": s}
		}},
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "title": t, "priority": p, "assigned_to": a, "due_date": d, "status": s, "user_id": uid}
		}},
		{build: func() Record {
			return Record{"project_id": pid, "title": t, "priority": p, "assigned_to": a, "due_date": d, "status": s}
		}},
		{needsUser: true, build: func() Record {
			return Record{"projectId": pid, "title": t, "priority": p, "assignedTo": a, "dueDate": d, "status": s, "user_id": uid}
		}},
		{build: func() Record { return Record{"project_id": pid, "title": t, "status": s} }},
		{build: func() Record { return Record{"projectId": pid, "title": t, "status": s} }},
	}
}

type ExpenseIntent struct {
	UserID      string
	ProjectID   string
	Title       string
	Amount      float64
	Category    string
	PurchasedAt string
}

func expenseShapes(in ExpenseIntent) []shapeDef {
	pid, t := in.ProjectID, in.Title
	amt, c := in.Amount, in.Category
	dt := orNil(in.PurchasedAt)
	uid := in.UserID
	return []shapeDef{
		// Primary shapes: amount under description-style columns.
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "amount": amt, "description": t, "user_id": uid}
		}},
		{build: func() Record { return Record{"project_id": pid, "amount": amt, "description": t} }},
		{needsUser: true, build: func() Record {
			return Record{"projectId": pid, "amount": amt, "description": t, "user_id": uid}
		}},
		{build: func() Record { return Record{"projectId": pid, "amount": amt, "description": t} }},

		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "title": t, "amount": amt, "category": c, "purchased_at": dt, "user_id": uid}
		}},
		{build: func() Record {
			return Record{"project_id": pid, "title": t, "amount": amt, "category": c, "purchased_at": dt}
		}},
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "title": t, "amount": amt, "user_id": uid}
		}},
		{build: func() Record { return Record{"projectId": pid, "title": t, "amount": amt, "category": c, "purchasedAt": dt} }},
		{needsUser: true, build: func() Record {
			return Record{"projectId": pid, "title": t, "amount": amt, "user_id": uid}
		}},
		{build: func() Record { return Record{"project_id": pid, "title": t, "amount": amt} }},
		{build: func() Record { return Record{"projectId": pid, "title": t, "amount": amt} }},

		// Wider schema-compatibility fallbacks.
		{build: func() Record {
			return Record{"project": pid, "title": t, "amount": amt, "category": c, "purchased_at": dt}
		}},
		{build: func() Record {
			return Record{"initiative_id": pid, "title": t, "amount": amt, "category": c, "purchased_at": dt}
		}},
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "expense_title": t, "cost": amt, "category": c, "expense_date": dt, "user_id": uid}
		}},
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "name": t, "cost": amt, "category": c, "date": dt, "user_id": uid}
		}},
		{build: func() Record { return Record{"project": pid, "expense_title": t, "cost": amt, "date": dt} }},
		{build: func() Record { return Record{"initiative_id": pid, "name": t, "price": amt, "date": dt} }},
		{needsUser: true, build: func() Record { return Record{"title": t, "amount": amt, "user_id": uid} }},
		{build: func() Record { return Record{"title": t, "amount": amt} }},
		{build: func() Record { return Record{"name": t, "cost": amt} }},
	}
}

type PhotoIntent struct {
	UserID    string
	ProjectID string
	URL       string
	Stage     string
}

func photoShapes(in PhotoIntent) []shapeDef {
	pid, u, stage := in.ProjectID, in.URL, in.Stage
	uid := in.UserID
	return []shapeDef{
		// Minimum required columns first.
		{build: func() Record { return Record{"project_id": pid, "url": u} }},
		{build: func() Record { return Record{"projectId": pid, "url": u} }},
		{needsUser: true, build: func() Record { return Record{"project_id": pid, "url": u, "user_id": uid} }},
		{needsUser: true, build: func() Record { return Record{"projectId": pid, "url": u, "user_id": uid} }},

		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "url": u, "stage": stage, "user_id": uid}
		}},
		{build: func() Record { return Record{"project_id": pid, "url": u, "stage": stage} }},

		// Common schema variants.
		{needsUser: true, build: func() Record {
			return Record{"projectId": pid, "url": u, "stage": stage, "user_id": uid}
		}},
		{build: func() Record { return Record{"projectId": pid, "url": u, "stage": stage} }},
		{needsUser: true, build: func() Record { return Record{"project_id": pid, "photo_url": u, "user_id": uid} }},
		{needsUser: true, build: func() Record { return Record{"project_id": pid, "image_url": u, "user_id": uid} }},
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "photo_url": u, "stage": stage, "user_id": uid}
		}},
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "image_url": u, "stage": stage, "user_id": uid}
		}},
		{build: func() Record { return Record{"project_id": pid, "photo": u, "stage": stage} }},
	}
}

type MaterialIntent struct {
	UserID    string
	ProjectID string
	Name      string
	Quantity  float64
	UnitCost  float64
	Purchased bool
}

func materialShapes(in MaterialIntent) []shapeDef {
	pid, n := in.ProjectID, in.Name
	qty, cost := in.Quantity, in.UnitCost
	uid := in.UserID
	return []shapeDef{
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "name": n, "quantity": qty, "unit_cost": cost, "user_id": uid}
		}},
		{build: func() Record { return Record{"project_id": pid, "name": n, "quantity": qty, "unit_cost": cost} }},
		{needsUser: true, build: func() Record {
			return Record{"projectId": pid, "name": n, "quantity": qty, "unit_cost": cost, "user_id": uid}
		}},
		{build: func() Record { return Record{"projectId": pid, "name": n, "quantity": qty, "unit_cost": cost} }},

		{build: func() Record {
			return Record{"project_id": pid, "name": n, "quantity": qty, "unit_cost": cost, "purchased": in.Purchased}
		}},
		{build: func() Record {
			return Record{"project_id": pid, "name": n, "estimated_price": cost, "actual_cost": cost}
		}},
	}
}

type ContractorIntent struct {
	UserID    string
	ProjectID string
	Name      string
	Phone     string
	Email     string
	Notes     string
}

func contractorShapes(in ContractorIntent) []shapeDef {
	pid, n := in.ProjectID, in.Name
	phone, email, notes := orNil(in.Phone), orNil(in.Email), orNil(in.Notes)
	uid := in.UserID
	return []shapeDef{
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "name": n, "phone": phone, "email": email, "notes": notes, "user_id": uid}
		}},
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "name": n, "phone": phone, "email": email, "user_id": uid}
		}},
		{build: func() Record {
			return Record{"project_id": pid, "name": n, "phone": phone, "email": email, "notes": notes}
		}},
		{needsUser: true, build: func() Record {
			return Record{"projectId": pid, "name": n, "phone": phone, "email": email, "notes": notes, "user_id": uid}
		}},
		{build: func() Record {
			return Record{"projectId": pid, "name": n, "phone": phone, "email": email, "notes": notes}
		}},
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "contractor_name": n, "phone": phone, "email": email, "user_id": uid}
		}},
		{build: func() Record { return Record{"project_id": pid, "full_name": n, "phone": phone, "email": email} }},
		{needsUser: true, build: func() Record { return Record{"name": n, "phone": phone, "email": email, "user_id": uid} }},
		{build: func() Record { return Record{"name": n, "phone": phone, "email": email} }},
	}
}

type PermitIntent struct {
	UserID       string
	ProjectID    string
	Name         string
	Status       string
	ApprovalDate string
	Deadline     string
}

func permitShapes(in PermitIntent) []shapeDef {
	pid, n, s := in.ProjectID, in.Name, in.Status
	approval, deadline := orNil(in.ApprovalDate), orNil(in.Deadline)
	uid := in.UserID
	return []shapeDef{
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "name": n, "status": s, "approval_date": approval, "deadline": deadline, "user_id": uid}
		}},
		{build: func() Record {
			return Record{"project_id": pid, "name": n, "status": s, "approval_date": approval, "deadline": deadline}
		}},
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "permit_name": n, "status": s, "approval_date": approval, "user_id": uid}
		}},
		{needsUser: true, build: func() Record {
			return Record{"projectId": pid, "name": n, "status": s, "approvalDate": approval, "deadline": deadline, "user_id": uid}
		}},
		{build: func() Record {
			return Record{"projectId": pid, "name": n, "status": s, "approvalDate": approval, "deadline": deadline}
		}},
		{build: func() Record { return Record{"project_id": pid, "name": n, "status": s} }},
	}
}

// InventoryIntent allows a nil project reference: tool inventory may be
// global rather than tied to one project.
type InventoryIntent struct {
	UserID    string
	ProjectID string
	Name      string
	Quantity  float64
}

func inventoryShapes(in InventoryIntent) []shapeDef {
	pid := orNil(in.ProjectID)
	n, qty := in.Name, in.Quantity
	uid := in.UserID
	return []shapeDef{
		{needsUser: true, build: func() Record {
			return Record{"project_id": pid, "name": n, "quantity": qty, "used": false, "user_id": uid}
		}},
		{build: func() Record { return Record{"project_id": pid, "name": n, "quantity": qty, "used": false} }},
		{needsUser: true, build: func() Record {
			return Record{"projectId": pid, "name": n, "quantity": qty, "used": false, "user_id": uid}
		}},
		{build: func() Record { return Record{"projectId": pid, "name": n, "quantity": qty, "used": false} }},
		{needsUser: true, build: func() Record { return Record{"name": n, "quantity": qty, "used": false, "user_id": uid} }},
		{build: func() Record { return Record{"name": n, "quantity": qty, "used": false} }},
	}
}

// MaintenanceIntent has no project reference: maintenance tasks are
// household-level, not per-project.
type MaintenanceIntent struct {
	UserID    string
	Title     string
	DueDate   string
	Frequency string
	Status    string
}

func maintenanceShapes(in MaintenanceIntent) []shapeDef {
	t, s, freq := in.Title, in.Status, in.Frequency
	d := orNil(in.DueDate)
	uid := in.UserID
	return []shapeDef{
		{needsUser: true, build: func() Record {
			return Record{"title": t, "due_date": d, "frequency": freq, "status": s, "user_id": uid}
		}},
		{build: func() Record { return Record{"title": t, "due_date": d, "frequency": freq, "status": s} }},
		{needsUser: true, build: func() Record {
			return Record{"title": t, "dueDate": d, "frequency": freq, "status": s, "user_id": uid}
		}},
		{build: func() Record { return Record{"title": t, "dueDate": d, "frequency": freq, "status": s} }},
		{needsUser: true, build: func() Record {
			return Record{"task": t, "due_date": d, "frequency": freq, "status": s, "user_id": uid}
		}},
		{needsUser: true, build: func() Record {
			return Record{"task_name": t, "due_date": d, "frequency": freq, "status": s, "user_id": uid}
		}},
		{needsUser: true, build: func() Record { return Record{"title": t, "status": s, "user_id": uid} }},
		{build: func() Record { return Record{"title": t, "status": s} }},
	}
}
