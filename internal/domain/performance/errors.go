package performance

import "errors"

var (
	ErrGoalNotFound       = errors.New("goal not found")
	ErrGoalCompleted      = errors.New("goal is already completed")
	ErrNotGoalOwner       = errors.New("not the owner of this goal")
	ErrAppraisalNotFound  = errors.New("appraisal not found")
	ErrAppraisalExists    = errors.New("appraisal already exists for this period")
	ErrIndicatorNotFound  = errors.New("indicator not found")
	ErrSelfAppraisal      = errors.New("cannot appraise yourself")
	ErrIndicatorNameTaken = errors.New("indicator name already exists")
)
