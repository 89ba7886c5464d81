package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/dto"
	"cognitive-pathways/internal/repository/models"
	"cognitive-pathways/internal/util"

	"github.com/jmoiron/sqlx"
)

const (
	courseColumns   = `id, name, stream, description, careers, duration, eligibility, created_at`
	collegeColumns  = `id, name, location, programs, facilities, type, ranking, created_at`
	timelineColumns = `id, title, event_date, description, category, is_active, created_at`
)

// whereBuilder accumulates AND-ed conditions with positional placeholders.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

func (w *whereBuilder) next(v interface{}) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

// contains adds a case-insensitive substring match over one or more columns.
func (w *whereBuilder) contains(value string, columns ...string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	ph := w.next(value)
	ors := make([]string, 0, len(columns))
	for _, col := range columns {
		ors = append(ors, fmt.Sprintf("LOWER(%s) LIKE LOWER('%%' || %s || '%%')", col, ph))
	}
	w.conds = append(w.conds, "("+strings.Join(ors, " OR ")+")")
}

func (w *whereBuilder) add(cond string, v interface{}) {
	w.conds = append(w.conds, fmt.Sprintf(cond, w.next(v)))
}

func (w *whereBuilder) raw(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page appends OFFSET/FETCH placeholders and returns the clause with all args.
func (w *whereBuilder) page(p dto.Pagination) (string, []interface{}) {
	args := append(append([]interface{}{}, w.args...), p.Offset, p.Limit)
	return fmt.Sprintf(" OFFSET $%d ROWS FETCH NEXT $%d ROWS ONLY", len(args)-1, len(args)), args
}

type sqlxRefDataRepository struct {
	db *sqlx.DB
}

func NewSQLXRefDataRepository(db *sqlx.DB) domain.RefDataRepository {
	return &sqlxRefDataRepository{db: db}
}

func (r *sqlxRefDataRepository) listPage(ctx context.Context, dest interface{}, table, columns, orderBy string, w *whereBuilder, p dto.Pagination) (int, error) {
	exec := GetExecutor(ctx, r.db)

	var total int
	if err := exec.GetContext(ctx, &total, `SELECT COUNT(*) FROM `+table+w.clause(), w.args...); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	pageClause, args := w.page(p)
	query := `SELECT ` + columns + ` FROM ` + table + w.clause() + ` ORDER BY ` + orderBy + pageClause
	if err := exec.SelectContext(ctx, dest, query, args...); err != nil {
		return 0, fmt.Errorf("failed to list %s: %w", table, err)
	}
	return total, nil
}

func (r *sqlxRefDataRepository) distinct(ctx context.Context, table, column string) ([]string, error) {
	values := []string{}
	query := fmt.Sprintf(`SELECT DISTINCT %[1]s FROM %[2]s WHERE %[1]s IS NOT NULL AND %[1]s <> '' ORDER BY %[1]s`, column, table)
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &values, query); err != nil {
		return nil, fmt.Errorf("failed to list distinct %s.%s: %w", table, column, err)
	}
	return values, nil
}

func (r *sqlxRefDataRepository) getOne(ctx context.Context, dest interface{}, table, columns, id string) (bool, error) {
	query := `SELECT ` + columns + ` FROM ` + table + ` WHERE id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, dest, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s %s: %w", table, id, err)
	}
	return true, nil
}

func toDomainCourse(m *models.Course) domain.Course {
	return domain.Course{
		ID:          m.ID,
		Name:        m.Name,
		Stream:      m.Stream,
		Description: m.Description,
		Careers:     []string(m.Careers),
		Duration:    m.Duration.String,
		Eligibility: m.Eligibility.String,
		CreatedAt:   m.CreatedAt,
	}
}

func toDomainCollege(m *models.College) domain.College {
	return domain.College{
		ID:         m.ID,
		Name:       m.Name,
		Location:   m.Location,
		Programs:   []string(m.Programs),
		Facilities: []string(m.Facilities),
		Type:       m.Type.String,
		Ranking:    util.NullInt64ToIntPtr(m.Ranking),
		CreatedAt:  m.CreatedAt,
	}
}

func toDomainTimelineEvent(m *models.TimelineEvent) domain.TimelineEvent {
	return domain.TimelineEvent{
		ID:          m.ID,
		Title:       m.Title,
		Date:        m.EventDate,
		Description: m.Description,
		Category:    m.Category,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *sqlxRefDataRepository) ListCourses(ctx context.Context, filter domain.CourseFilter, p dto.Pagination) ([]domain.Course, int, error) {
	w := &whereBuilder{}
	w.contains(filter.Stream, "stream")
	w.contains(filter.Search, "name", "description", "careers")

	var rows []models.Course
	total, err := r.listPage(ctx, &rows, "courses", courseColumns, "name ASC, id ASC", w, p)
	if err != nil {
		return nil, 0, err
	}
	courses := make([]domain.Course, 0, len(rows))
	for i := range rows {
		courses = append(courses, toDomainCourse(&rows[i]))
	}
	return courses, total, nil
}

func (r *sqlxRefDataRepository) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	var row models.Course
	found, err := r.getOne(ctx, &row, "courses", courseColumns, id)
	if err != nil || !found {
		return nil, err
	}
	c := toDomainCourse(&row)
	return &c, nil
}

func (r *sqlxRefDataRepository) DistinctCourseStreams(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "courses", "stream")
}

func (r *sqlxRefDataRepository) CreateCourse(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (` + courseColumns + `)
	          VALUES (:id, :name, :stream, :description, :careers, :duration, :eligibility, :created_at)`
	row := &models.Course{
		ID:          c.ID,
		Name:        c.Name,
		Stream:      c.Stream,
		Description: c.Description,
		Careers:     models.StringSlice(c.Careers),
		Duration:    util.StringToNullString(c.Duration),
		Eligibility: util.StringToNullString(c.Eligibility),
		CreatedAt:   c.CreatedAt,
	}
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

// ListColleges orders ranked colleges first, by rank, then by name.
func (r *sqlxRefDataRepository) ListColleges(ctx context.Context, filter domain.CollegeFilter, p dto.Pagination) ([]domain.College, int, error) {
	w := &whereBuilder{}
	w.contains(filter.Location, "location")
	w.contains(filter.Type, "type")

	var rows []models.College
	total, err := r.listPage(ctx, &rows, "colleges", collegeColumns, "ranking ASC NULLS LAST, name ASC", w, p)
	if err != nil {
		return nil, 0, err
	}
	colleges := make([]domain.College, 0, len(rows))
	for i := range rows {
		colleges = append(colleges, toDomainCollege(&rows[i]))
	}
	return colleges, total, nil
}

func (r *sqlxRefDataRepository) GetCollege(ctx context.Context, id string) (*domain.College, error) {
	var row models.College
	found, err := r.getOne(ctx, &row, "colleges", collegeColumns, id)
	if err != nil || !found {
		return nil, err
	}
	c := toDomainCollege(&row)
	return &c, nil
}

func (r *sqlxRefDataRepository) DistinctCollegeLocations(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "colleges", "location")
}

func (r *sqlxRefDataRepository) DistinctCollegeTypes(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "colleges", "type")
}

func (r *sqlxRefDataRepository) CreateCollege(ctx context.Context, c *domain.College) error {
	query := `INSERT INTO colleges (` + collegeColumns + `)
	          VALUES (:id, :name, :location, :programs, :facilities, :type, :ranking, :created_at)`
	row := &models.College{
		ID:         c.ID,
		Name:       c.Name,
		Location:   c.Location,
		Programs:   models.StringSlice(c.Programs),
		Facilities: models.StringSlice(c.Facilities),
		Type:       util.StringToNullString(c.Type),
		Ranking:    util.IntPtrToNullInt64(c.Ranking),
		CreatedAt:  c.CreatedAt,
	}
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to create college: %w", err)
	}
	return nil
}

// ListTimelineEvents returns active events in date order.
func (r *sqlxRefDataRepository) ListTimelineEvents(ctx context.Context, filter domain.TimelineFilter, p dto.Pagination) ([]domain.TimelineEvent, int, error) {
	w := &whereBuilder{}
	w.raw("is_active = TRUE")
	w.contains(filter.Category, "category")
	if !filter.From.IsZero() {
		w.add("event_date >= %s", filter.From)
	}
	if !filter.To.IsZero() {
		w.add("event_date <= %s", filter.To)
	}

	var rows []models.TimelineEvent
	total, err := r.listPage(ctx, &rows, "timeline_events", timelineColumns, "event_date ASC, id ASC", w, p)
	if err != nil {
		return nil, 0, err
	}
	events := make([]domain.TimelineEvent, 0, len(rows))
	for i := range rows {
		events = append(events, toDomainTimelineEvent(&rows[i]))
	}
	return events, total, nil
}

func (r *sqlxRefDataRepository) GetTimelineEvent(ctx context.Context, id string) (*domain.TimelineEvent, error) {
	var row models.TimelineEvent
	found, err := r.getOne(ctx, &row, "timeline_events", timelineColumns, id)
	if err != nil || !found {
		return nil, err
	}
	e := toDomainTimelineEvent(&row)
	return &e, nil
}

func (r *sqlxRefDataRepository) DistinctTimelineCategories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "timeline_events", "category")
}

func (r *sqlxRefDataRepository) CreateTimelineEvent(ctx context.Context, e *domain.TimelineEvent) error {
	query := `INSERT INTO timeline_events (` + timelineColumns + `)
	          VALUES (:id, :title, :event_date, :description, :category, :is_active, :created_at)`
	row := &models.TimelineEvent{
		ID:          e.ID,
		Title:       e.Title,
		EventDate:   e.Date,
		Description: e.Description,
		Category:    e.Category,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
	}
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to create timeline event: %w", err)
	}
	return nil
}

func (r *sqlxRefDataRepository) DeleteAllRefData(ctx context.Context) error {
	exec := GetExecutor(ctx, r.db)
	for _, table := range []string{"timeline_events", "colleges", "courses"} {
		if _, err := exec.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}
