package taskstate

// Patch is a partial task update as received on the wire. Nil fields are
// left untouched.
type Patch struct {
	Title      *string
	Status     *string
	IsComplete *bool
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Status == nil && p.IsComplete == nil
}

// Result is the validated outcome of applying a Patch.
type Result struct {
	Title  string
	Status Status
}

// Apply validates p against the current title and status and returns the
// reconciled values.
//
// Rules:
//   - an explicit status wins; isComplete follows it
//   - isComplete=true alone moves the task to completed
//   - isComplete=false alone moves a completed task back to pending and
//     leaves pending/ongoing tasks where they are
func Apply(title string, current Status, p Patch) (Result, error) {
	res := Result{Title: title, Status: current}

	if p.Title != nil {
		t, err := NormalizeTitle(*p.Title)
		if err != nil {
			return Result{}, err
		}
		res.Title = t
	}

	switch {
	case p.Status != nil:
		st, err := ParseStatus(*p.Status)
		if err != nil {
			return Result{}, err
		}
		res.Status = st
	case p.IsComplete != nil:
		res.Status = reconcileComplete(current, *p.IsComplete)
	}

	return res, nil
}

func reconcileComplete(current Status, complete bool) Status {
	if complete {
		return StatusCompleted
	}
	if current == StatusCompleted {
		return StatusPending
	}
	return current
}
