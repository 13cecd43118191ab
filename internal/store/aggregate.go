package store

import (
	"context"
	"math"
	"strings"
	"sync"
)

// DashboardSnapshot summarizes all projects for the dashboard page.
type DashboardSnapshot struct {
	TotalProjects     int     `json:"totalProjects"`
	ActiveProjects    int     `json:"activeProjects"`
	CompletedProjects int     `json:"completedProjects"`
	TotalBudgetSpent  float64 `json:"totalBudgetSpent"`
	UpcomingTasks     int     `json:"upcomingTasks"`
}

// ReportRow is the per-project line of the reports page.
type ReportRow struct {
	ID          string  `json:"id"`
	ProjectName string  `json:"projectName"`
	Status      string  `json:"status"`
	Progress    int     `json:"progress"`
	TotalCost   float64 `json:"totalCost"`
	Budget      float64 `json:"budget"`
	Variance    float64 `json:"variance"`
}

// Progress is the completed-task ratio as a percentage rounded to the
// nearest integer. No tasks means 0, never a division error.
func Progress(tasks []Record) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if statusOf(t) == "completed" {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(tasks)) * 100))
}

// TotalSpend sums expense rows using money-value resolution across the
// amount/cost/price column variants.
func TotalSpend(expenses []Record) float64 {
	var total float64
	for _, e := range expenses {
		total += Money(e)
	}
	return total
}

func countUpcoming(tasks []Record) int {
	n := 0
	for _, t := range tasks {
		if statusOf(t) != "completed" {
			n++
		}
	}
	return n
}

func statusOf(r Record) string {
	s, _ := r["status"].(string)
	return strings.ToLower(s)
}

type projectRollup struct {
	tasks    []Record
	expenses []Record
}

// rollup fetches a project's tasks and expenses concurrently. Projects
// themselves are walked sequentially; no cross-request consistency is
// guaranteed, so a project deleted mid-aggregation may still appear.
func (s *EntityStore) rollup(ctx context.Context, projectID string) projectRollup {
	var r projectRollup
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		r.tasks = s.GetTasksByProject(ctx, projectID)
	}()
	go func() {
		defer wg.Done()
		r.expenses = s.GetExpensesByProject(ctx, projectID)
	}()
	wg.Wait()
	return r
}

// GetDashboardSnapshot derives the dashboard counters from all projects.
func (s *EntityStore) GetDashboardSnapshot(ctx context.Context) DashboardSnapshot {
	projects := s.GetProjects(ctx)

	snap := DashboardSnapshot{TotalProjects: len(projects)}
	for _, p := range projects {
		r := s.rollup(ctx, RecordID(p))
		snap.UpcomingTasks += countUpcoming(r.tasks)
		snap.TotalBudgetSpent += TotalSpend(r.expenses)

		if statusOf(p) == "completed" {
			snap.CompletedProjects++
		}
	}
	snap.ActiveProjects = snap.TotalProjects - snap.CompletedProjects
	return snap
}

// GetReports derives per-project progress and budget variance rows.
func (s *EntityStore) GetReports(ctx context.Context) []ReportRow {
	projects := s.GetProjects(ctx)

	rows := make([]ReportRow, 0, len(projects))
	for _, p := range projects {
		id := RecordID(p)
		r := s.rollup(ctx, id)

		name, _ := p["title"].(string)
		if name == "" {
			name = "Untitled"
		}
		status := statusOf(p)
		if status == "" {
			status = "planning"
		}

		totalCost := TotalSpend(r.expenses)
		budget := toNumber(p["budget"])

		rows = append(rows, ReportRow{
			ID:          id,
			ProjectName: name,
			Status:      status,
			Progress:    Progress(r.tasks),
			TotalCost:   totalCost,
			Budget:      budget,
			Variance:    budget - totalCost,
		})
	}
	return rows
}
