package service

import (
	"time"

	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/repository"
)

// In-memory repository fakes for service tests.

type fakeCategoryRepo struct {
	overrides []*model.Category
	settings  []*model.CategorySetting
}

func (f *fakeCategoryRepo) Overrides(userID string) ([]*model.Category, error) {
	return f.overrides, nil
}

func (f *fakeCategoryRepo) ByCode(userID, code string) (*model.Category, error) {
	for _, ov := range f.overrides {
		if ov.Code == code {
			return ov, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) Upsert(category *model.Category) error {
	for i, ov := range f.overrides {
		if ov.Code == category.Code {
			f.overrides[i] = category
			return nil
		}
	}
	f.overrides = append(f.overrides, category)
	return nil
}

func (f *fakeCategoryRepo) Delete(userID, code string) error {
	for i, ov := range f.overrides {
		if ov.Code == code {
			f.overrides = append(f.overrides[:i], f.overrides[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCategoryRepo) Settings(userID string) ([]*model.CategorySetting, error) {
	return f.settings, nil
}

func (f *fakeCategoryRepo) SetDefaultActive(userID, code string, isActive bool) error {
	for _, s := range f.settings {
		if s.Code == code {
			s.IsActive = isActive
			return nil
		}
	}
	f.settings = append(f.settings, &model.CategorySetting{UserID: userID, Code: code, IsActive: isActive})
	return nil
}

type fakeGoalRepo struct {
	goals map[string]*model.MonthlyGoal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[string]*model.MonthlyGoal)}
}

func (f *fakeGoalRepo) Create(goal *model.MonthlyGoal) error {
	f.goals[goal.ID] = goal
	return nil
}

func (f *fakeGoalRepo) ByID(userID, goalID string) (*model.MonthlyGoal, error) {
	goal, ok := f.goals[goalID]
	if !ok || goal.UserID != userID {
		return nil, repository.ErrMonthlyGoalNotFound
	}
	return goal, nil
}

func (f *fakeGoalRepo) ByPeriod(userID string, start, end time.Time) ([]*model.MonthlyGoal, error) {
	var out []*model.MonthlyGoal
	for _, goal := range f.goals {
		if goal.UserID != userID {
			continue
		}
		if goal.MonthDate.Before(start) || goal.MonthDate.After(end) {
			continue
		}
		out = append(out, goal)
	}
	return out, nil
}

func (f *fakeGoalRepo) Update(goal *model.MonthlyGoal) error {
	if _, ok := f.goals[goal.ID]; !ok {
		return repository.ErrMonthlyGoalNotFound
	}
	f.goals[goal.ID] = goal
	return nil
}

func (f *fakeGoalRepo) Delete(userID, goalID string) error {
	delete(f.goals, goalID)
	return nil
}

type fakeTaskRepo struct {
	tasks map[string]*model.WeeklyTask
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*model.WeeklyTask)}
}

func (f *fakeTaskRepo) Create(task *model.WeeklyTask) error {
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) ByID(userID, taskID string) (*model.WeeklyTask, error) {
	task, ok := f.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, repository.ErrWeeklyTaskNotFound
	}
	return task, nil
}

func (f *fakeTaskRepo) ByPeriod(userID string, start, end time.Time) ([]*model.WeeklyTask, error) {
	var out []*model.WeeklyTask
	for _, task := range f.tasks {
		if task.UserID != userID {
			continue
		}
		if task.WeekStartDate.Before(start) || task.WeekStartDate.After(end) {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(task *model.WeeklyTask) error {
	if _, ok := f.tasks[task.ID]; !ok {
		return repository.ErrWeeklyTaskNotFound
	}
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) Delete(userID, taskID string) error {
	delete(f.tasks, taskID)
	return nil
}

type fakePlanRepo struct {
	plans map[string]*model.DailyPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[string]*model.DailyPlan)}
}

func (f *fakePlanRepo) Create(plan *model.DailyPlan) error {
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakePlanRepo) ByID(userID, planID string) (*model.DailyPlan, error) {
	plan, ok := f.plans[planID]
	if !ok || plan.UserID != userID {
		return nil, repository.ErrDailyPlanNotFound
	}
	return plan, nil
}

func (f *fakePlanRepo) ByPeriod(userID string, start, end time.Time) ([]*model.DailyPlan, error) {
	var out []*model.DailyPlan
	for _, plan := range f.plans {
		if plan.UserID != userID {
			continue
		}
		if plan.PlanDate.Before(start) || plan.PlanDate.After(end) {
			continue
		}
		out = append(out, plan)
	}
	return out, nil
}

func (f *fakePlanRepo) Update(plan *model.DailyPlan) error {
	if _, ok := f.plans[plan.ID]; !ok {
		return repository.ErrDailyPlanNotFound
	}
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakePlanRepo) Delete(userID, planID string) error {
	delete(f.plans, planID)
	return nil
}

type fakeRecordRepo struct {
	records map[string]*model.DailyRecord
	memos   map[string][]*model.Memo
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{
		records: make(map[string]*model.DailyRecord),
		memos:   make(map[string][]*model.Memo),
	}
}

func (f *fakeRecordRepo) Create(record *model.DailyRecord) error {
	f.records[record.ID] = record
	return nil
}

func (f *fakeRecordRepo) ByID(userID, recordID string) (*model.DailyRecord, error) {
	record, ok := f.records[recordID]
	if !ok || record.UserID != userID {
		return nil, repository.ErrDailyRecordNotFound
	}
	return record, nil
}

func (f *fakeRecordRepo) ByPeriod(userID string, start, end time.Time) ([]*model.DailyRecord, error) {
	var out []*model.DailyRecord
	for _, record := range f.records {
		if record.UserID != userID {
			continue
		}
		if record.RecordDate.Before(start) || record.RecordDate.After(end) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (f *fakeRecordRepo) PublicByDate(date time.Time) ([]*model.DailyRecord, error) {
	var out []*model.DailyRecord
	for _, record := range f.records {
		if record.IsPublic && record.RecordDate.Equal(date) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) Update(record *model.DailyRecord) error {
	if _, ok := f.records[record.ID]; !ok {
		return repository.ErrDailyRecordNotFound
	}
	f.records[record.ID] = record
	return nil
}

func (f *fakeRecordRepo) Delete(userID, recordID string) error {
	delete(f.records, recordID)
	delete(f.memos, recordID)
	return nil
}

func (f *fakeRecordRepo) CreateMemo(memo *model.Memo) error {
	f.memos[memo.RecordID] = append(f.memos[memo.RecordID], memo)
	return nil
}

func (f *fakeRecordRepo) Memos(recordID string) ([]*model.Memo, error) {
	return f.memos[recordID], nil
}

func (f *fakeRecordRepo) DeleteMemo(recordID, memoID string) error {
	memos := f.memos[recordID]
	for i, memo := range memos {
		if memo.ID == memoID {
			f.memos[recordID] = append(memos[:i], memos[i+1:]...)
			return nil
		}
	}
	return repository.ErrMemoNotFound
}

type fakeProfileRepo struct {
	profiles map[string]*model.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*model.Profile)}
}

func (f *fakeProfileRepo) ByUserID(userID string) (*model.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepo) Create(profile *model.Profile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) Update(userID, name, timezone string) error {
	profile, ok := f.profiles[userID]
	if !ok {
		return repository.ErrProfileNotFound
	}
	profile.Name = name
	profile.Timezone = timezone
	return nil
}

func newTestCategoryService() *CategoryService {
	return NewCategoryService(&fakeCategoryRepo{})
}
