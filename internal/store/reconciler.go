package store

import (
	"encoding/json"
	"strconv"
)

// The application speaks camelCase domain names; the backing store speaks
// snake_case with a few generic substitutions (deadline for dueDate). These
// helpers rename recognized aliases in the write direction and resolve the
// first present key in the read direction. Unrecognized fields pass through.

func rename(p Record, from, to string) {
	if v, ok := p[from]; ok {
		p[to] = v
		delete(p, from)
	}
}

func normalizeProjectPatch(patch Record) Record {
	p := cloneRecord(patch)
	rename(p, "startDate", "start_date")
	rename(p, "endDate", "end_date")
	if v, ok := p["targetBudget"]; ok {
		p["budget"] = toNumber(v)
		delete(p, "targetBudget")
	}
	rename(p, "name", "title")
	return p
}

func normalizeTaskPatch(patch Record) Record {
	p := cloneRecord(patch)
	rename(p, "dueDate", "deadline")
	rename(p, "assignedTo", "assigned_to")
	return p
}

// taskPatchAlternate maps the due date onto due_date instead of deadline, for
// stores that kept the older column name.
func taskPatchAlternate(patch Record) Record {
	p := cloneRecord(patch)
	rename(p, "dueDate", "due_date")
	rename(p, "assignedTo", "assigned_to")
	return p
}

func normalizeExpensePatch(patch Record) Record {
	p := cloneRecord(patch)
	rename(p, "purchasedAt", "purchased_at")
	if v, ok := p["title"]; ok {
		if _, mirrored := p["description"]; !mirrored {
			p["description"] = v
		}
	}
	return p
}

// expensePatchAlternate keeps the caller's field names and only mirrors title
// into description, for stores without a purchased_at column.
func expensePatchAlternate(patch Record) Record {
	p := cloneRecord(patch)
	if v, ok := p["title"]; ok {
		if _, mirrored := p["description"]; !mirrored {
			p["description"] = v
		}
	}
	return p
}

func normalizePermitPatch(patch Record) Record {
	p := cloneRecord(patch)
	if v, ok := p["approvalDate"]; ok {
		if _, present := p["approval_date"]; !present {
			p["approval_date"] = v
		}
	}
	return p
}

// resolve returns the first present, non-nil value among keys.
func resolve(r Record, keys ...string) any {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// decorateTask adds the read-path aliases the application consumes.
func decorateTask(row Record) Record {
	t := cloneRecord(row)
	t["dueDate"] = resolve(t, "deadline", "due_date", "dueDate")
	if v := resolve(t, "assigned_to", "assignedTo"); v != nil {
		t["assignedTo"] = v
	} else {
		t["assignedTo"] = ""
	}
	return t
}

// Money resolves a monetary value from amount, cost, or price, coerced to a
// number. Absent or non-numeric values resolve to 0.
func Money(r Record) float64 {
	return toNumber(resolve(r, "amount", "cost", "price"))
}

func toNumber(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
