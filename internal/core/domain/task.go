package domain

// Task is one concrete executable bound to a phase of a unit's plan.
// ID is unique within its unit; the same phase may carry several tasks.
type Task struct {
	ID          InternedString
	Phase       InternedString
	Command     []string
	Environment map[string]string
	WorkingDir  InternedString
}

// PhaseName returns the name of the phase the task is bound to.
func (t *Task) PhaseName() string {
	return t.Phase.String()
}

// taskPhase adapts Task to the phase accessor used by Reorder.
func taskPhase(t Task) string {
	return t.Phase.String()
}
