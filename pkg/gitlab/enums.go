package gitlab

import (
	"fmt"
	"strconv"
)

// enumValue: перечисление с явной таблицей wire-значений.
// Нулевое значение означает "не задано".
type enumValue interface {
	wire() (string, bool)
	unset() bool
}

// enumTable сопоставляет значения перечисления их wire-представлению.
type enumTable[E ~int] map[E]string

func (t enumTable[E]) lookup(v E) (string, bool) {
	s, ok := t[v]
	return s, ok
}

func (t enumTable[E]) name(v E) string {
	if s, ok := t[v]; ok {
		return s
	}
	return "unknown(" + strconv.Itoa(int(v)) + ")"
}

// parse ищет значение по wire-строке. Пустая строка даёт нулевое значение.
func (t enumTable[E]) parse(field, s string) (E, error) {
	if s == "" {
		return 0, nil
	}
	for v, w := range t {
		if w == s {
			return v, nil
		}
	}
	return 0, NewValidationError(field, fmt.Sprintf("неизвестное значение %q", s))
}

// enumList приводит срез конкретного перечисления к []enumValue.
func enumList[E enumValue](values []E) []enumValue {
	if len(values) == 0 {
		return nil
	}
	out := make([]enumValue, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// SortOrder: направление сортировки.
type SortOrder int

const (
	SortAsc SortOrder = iota + 1
	SortDesc
)

var sortOrderTable = enumTable[SortOrder]{
	SortAsc:  "asc",
	SortDesc: "desc",
}

func (v SortOrder) String() string       { return sortOrderTable.name(v) }
func (v SortOrder) wire() (string, bool) { return sortOrderTable.lookup(v) }
func (v SortOrder) unset() bool          { return v == 0 }

// AccessLevel: уровень доступа участника проекта или группы.
// Значения совпадают с числовыми уровнями GitLab.
type AccessLevel int

const (
	AccessGuest     AccessLevel = 10
	AccessReporter  AccessLevel = 20
	AccessDeveloper AccessLevel = 30
	AccessMaster    AccessLevel = 40
	AccessOwner     AccessLevel = 50
)

var accessLevelTable = enumTable[AccessLevel]{
	AccessGuest:     "10",
	AccessReporter:  "20",
	AccessDeveloper: "30",
	AccessMaster:    "40",
	AccessOwner:     "50",
}

var accessLevelNames = enumTable[AccessLevel]{
	AccessGuest:     "guest",
	AccessReporter:  "reporter",
	AccessDeveloper: "developer",
	AccessMaster:    "master",
	AccessOwner:     "owner",
}

func (v AccessLevel) String() string       { return accessLevelNames.name(v) }
func (v AccessLevel) wire() (string, bool) { return accessLevelTable.lookup(v) }
func (v AccessLevel) unset() bool          { return v == 0 }

// VisibilityLevel: числовой уровень видимости проекта или сниппета (visibility_level).
type VisibilityLevel int

const (
	VisibilityPrivate VisibilityLevel = iota + 1
	VisibilityInternal
	VisibilityPublic
)

var visibilityLevelTable = enumTable[VisibilityLevel]{
	VisibilityPrivate:  "0",
	VisibilityInternal: "10",
	VisibilityPublic:   "20",
}

var visibilityLevelNames = enumTable[VisibilityLevel]{
	VisibilityPrivate:  "private",
	VisibilityInternal: "internal",
	VisibilityPublic:   "public",
}

func (v VisibilityLevel) String() string       { return visibilityLevelNames.name(v) }
func (v VisibilityLevel) wire() (string, bool) { return visibilityLevelTable.lookup(v) }
func (v VisibilityLevel) unset() bool          { return v == 0 }

// visibilityName: строковое представление для фильтра visibility.
type visibilityName VisibilityLevel

func (v visibilityName) wire() (string, bool) { return visibilityLevelNames.lookup(VisibilityLevel(v)) }
func (v visibilityName) unset() bool          { return v == 0 }
func (v visibilityName) String() string       { return VisibilityLevel(v).String() }

// ProjectOrderBy: поле сортировки списка проектов.
type ProjectOrderBy int

const (
	ProjectOrderByID ProjectOrderBy = iota + 1
	ProjectOrderByName
	ProjectOrderByPath
	ProjectOrderByCreatedAt
	ProjectOrderByLastActivityAt
)

var projectOrderByTable = enumTable[ProjectOrderBy]{
	ProjectOrderByID:             "id",
	ProjectOrderByName:           "name",
	ProjectOrderByPath:           "path",
	ProjectOrderByCreatedAt:      "created_at",
	ProjectOrderByLastActivityAt: "last_activity_at",
}

func (v ProjectOrderBy) String() string       { return projectOrderByTable.name(v) }
func (v ProjectOrderBy) wire() (string, bool) { return projectOrderByTable.lookup(v) }
func (v ProjectOrderBy) unset() bool          { return v == 0 }

// GroupOrderBy: поле сортировки списка групп.
type GroupOrderBy int

const (
	GroupOrderByName GroupOrderBy = iota + 1
	GroupOrderByPath
)

var groupOrderByTable = enumTable[GroupOrderBy]{
	GroupOrderByName: "name",
	GroupOrderByPath: "path",
}

func (v GroupOrderBy) String() string       { return groupOrderByTable.name(v) }
func (v GroupOrderBy) wire() (string, bool) { return groupOrderByTable.lookup(v) }
func (v GroupOrderBy) unset() bool          { return v == 0 }

// OrderBy: сортировка по времени создания или обновления (задачи, merge requests).
type OrderBy int

const (
	OrderByCreatedAt OrderBy = iota + 1
	OrderByUpdatedAt
)

var orderByTable = enumTable[OrderBy]{
	OrderByCreatedAt: "created_at",
	OrderByUpdatedAt: "updated_at",
}

func (v OrderBy) String() string       { return orderByTable.name(v) }
func (v OrderBy) wire() (string, bool) { return orderByTable.lookup(v) }
func (v OrderBy) unset() bool          { return v == 0 }

// IssueState: фильтр состояния задач.
type IssueState int

const (
	IssueStateOpened IssueState = iota + 1
	IssueStateClosed
	IssueStateAll
)

var issueStateTable = enumTable[IssueState]{
	IssueStateOpened: "opened",
	IssueStateClosed: "closed",
	IssueStateAll:    "all",
}

func (v IssueState) String() string       { return issueStateTable.name(v) }
func (v IssueState) wire() (string, bool) { return issueStateTable.lookup(v) }
func (v IssueState) unset() bool          { return v == 0 }

// MergeRequestState: фильтр состояния merge requests.
type MergeRequestState int

const (
	MergeRequestStateOpened MergeRequestState = iota + 1
	MergeRequestStateClosed
	MergeRequestStateMerged
	MergeRequestStateAll
)

var mergeRequestStateTable = enumTable[MergeRequestState]{
	MergeRequestStateOpened: "opened",
	MergeRequestStateClosed: "closed",
	MergeRequestStateMerged: "merged",
	MergeRequestStateAll:    "all",
}

func (v MergeRequestState) String() string       { return mergeRequestStateTable.name(v) }
func (v MergeRequestState) wire() (string, bool) { return mergeRequestStateTable.lookup(v) }
func (v MergeRequestState) unset() bool          { return v == 0 }

// StateEvent: событие смены состояния задачи, merge request или milestone.
type StateEvent int

const (
	StateEventClose StateEvent = iota + 1
	StateEventReopen
	StateEventMerge
	StateEventActivate
)

var stateEventTable = enumTable[StateEvent]{
	StateEventClose:    "close",
	StateEventReopen:   "reopen",
	StateEventMerge:    "merge",
	StateEventActivate: "activate",
}

func (v StateEvent) String() string       { return stateEventTable.name(v) }
func (v StateEvent) wire() (string, bool) { return stateEventTable.lookup(v) }
func (v StateEvent) unset() bool          { return v == 0 }

// BuildScope: фильтр статуса сборок.
type BuildScope int

const (
	BuildScopeCreated BuildScope = iota + 1
	BuildScopePending
	BuildScopeRunning
	BuildScopeFailed
	BuildScopeSuccess
	BuildScopeCanceled
	BuildScopeSkipped
	BuildScopeManual
)

var buildScopeTable = enumTable[BuildScope]{
	BuildScopeCreated:  "created",
	BuildScopePending:  "pending",
	BuildScopeRunning:  "running",
	BuildScopeFailed:   "failed",
	BuildScopeSuccess:  "success",
	BuildScopeCanceled: "canceled",
	BuildScopeSkipped:  "skipped",
	BuildScopeManual:   "manual",
}

func (v BuildScope) String() string       { return buildScopeTable.name(v) }
func (v BuildScope) wire() (string, bool) { return buildScopeTable.lookup(v) }
func (v BuildScope) unset() bool          { return v == 0 }

// CommitStatusState: состояние внешнего статуса коммита.
type CommitStatusState int

const (
	CommitStatusPending CommitStatusState = iota + 1
	CommitStatusRunning
	CommitStatusSuccess
	CommitStatusFailed
	CommitStatusCanceled
)

var commitStatusStateTable = enumTable[CommitStatusState]{
	CommitStatusPending:  "pending",
	CommitStatusRunning:  "running",
	CommitStatusSuccess:  "success",
	CommitStatusFailed:   "failed",
	CommitStatusCanceled: "canceled",
}

func (v CommitStatusState) String() string       { return commitStatusStateTable.name(v) }
func (v CommitStatusState) wire() (string, bool) { return commitStatusStateTable.lookup(v) }
func (v CommitStatusState) unset() bool          { return v == 0 }

// PipelineScope: фильтр области конвейеров.
type PipelineScope int

const (
	PipelineScopeRunning PipelineScope = iota + 1
	PipelineScopePending
	PipelineScopeFinished
	PipelineScopeBranches
	PipelineScopeTags
)

var pipelineScopeTable = enumTable[PipelineScope]{
	PipelineScopeRunning:  "running",
	PipelineScopePending:  "pending",
	PipelineScopeFinished: "finished",
	PipelineScopeBranches: "branches",
	PipelineScopeTags:     "tags",
}

func (v PipelineScope) String() string       { return pipelineScopeTable.name(v) }
func (v PipelineScope) wire() (string, bool) { return pipelineScopeTable.lookup(v) }
func (v PipelineScope) unset() bool          { return v == 0 }

// PipelineStatus: фильтр статуса конвейеров.
type PipelineStatus int

const (
	PipelineStatusRunning PipelineStatus = iota + 1
	PipelineStatusPending
	PipelineStatusSuccess
	PipelineStatusFailed
	PipelineStatusCanceled
	PipelineStatusSkipped
)

var pipelineStatusTable = enumTable[PipelineStatus]{
	PipelineStatusRunning:  "running",
	PipelineStatusPending:  "pending",
	PipelineStatusSuccess:  "success",
	PipelineStatusFailed:   "failed",
	PipelineStatusCanceled: "canceled",
	PipelineStatusSkipped:  "skipped",
}

func (v PipelineStatus) String() string       { return pipelineStatusTable.name(v) }
func (v PipelineStatus) wire() (string, bool) { return pipelineStatusTable.lookup(v) }
func (v PipelineStatus) unset() bool          { return v == 0 }

// RunnerScope: фильтр runners.
type RunnerScope int

const (
	RunnerScopeActive RunnerScope = iota + 1
	RunnerScopePaused
	RunnerScopeOnline
	RunnerScopeSpecific
	RunnerScopeShared
)

var runnerScopeTable = enumTable[RunnerScope]{
	RunnerScopeActive:   "active",
	RunnerScopePaused:   "paused",
	RunnerScopeOnline:   "online",
	RunnerScopeSpecific: "specific",
	RunnerScopeShared:   "shared",
}

func (v RunnerScope) String() string       { return runnerScopeTable.name(v) }
func (v RunnerScope) wire() (string, bool) { return runnerScopeTable.lookup(v) }
func (v RunnerScope) unset() bool          { return v == 0 }

// TodoAction: действие, породившее todo.
type TodoAction int

const (
	TodoActionAssigned TodoAction = iota + 1
	TodoActionMentioned
	TodoActionBuildFailed
	TodoActionMarked
)

var todoActionTable = enumTable[TodoAction]{
	TodoActionAssigned:    "assigned",
	TodoActionMentioned:   "mentioned",
	TodoActionBuildFailed: "build_failed",
	TodoActionMarked:      "marked",
}

func (v TodoAction) String() string       { return todoActionTable.name(v) }
func (v TodoAction) wire() (string, bool) { return todoActionTable.lookup(v) }
func (v TodoAction) unset() bool          { return v == 0 }

// TodoState: состояние todo.
type TodoState int

const (
	TodoStatePending TodoState = iota + 1
	TodoStateDone
)

var todoStateTable = enumTable[TodoState]{
	TodoStatePending: "pending",
	TodoStateDone:    "done",
}

func (v TodoState) String() string       { return todoStateTable.name(v) }
func (v TodoState) wire() (string, bool) { return todoStateTable.lookup(v) }
func (v TodoState) unset() bool          { return v == 0 }

// TodoTargetType: тип объекта todo.
type TodoTargetType int

const (
	TodoTargetIssue TodoTargetType = iota + 1
	TodoTargetMergeRequest
)

var todoTargetTypeTable = enumTable[TodoTargetType]{
	TodoTargetIssue:        "Issue",
	TodoTargetMergeRequest: "MergeRequest",
}

func (v TodoTargetType) String() string       { return todoTargetTypeTable.name(v) }
func (v TodoTargetType) wire() (string, bool) { return todoTargetTypeTable.lookup(v) }
func (v TodoTargetType) unset() bool          { return v == 0 }

// LineType: сторона diff для комментария к строке.
type LineType int

const (
	LineTypeNew LineType = iota + 1
	LineTypeOld
)

var lineTypeTable = enumTable[LineType]{
	LineTypeNew: "new",
	LineTypeOld: "old",
}

func (v LineType) String() string       { return lineTypeTable.name(v) }
func (v LineType) wire() (string, bool) { return lineTypeTable.lookup(v) }
func (v LineType) unset() bool          { return v == 0 }

// FileEncoding: кодировка содержимого файла в репозитории.
type FileEncoding int

const (
	FileEncodingText FileEncoding = iota + 1
	FileEncodingBase64
)

var fileEncodingTable = enumTable[FileEncoding]{
	FileEncodingText:   "text",
	FileEncodingBase64: "base64",
}

func (v FileEncoding) String() string       { return fileEncodingTable.name(v) }
func (v FileEncoding) wire() (string, bool) { return fileEncodingTable.lookup(v) }
func (v FileEncoding) unset() bool          { return v == 0 }

// NoteableType: объект, к которому относятся заметки.
// Wire-значение: сегмент пути ресурса.
type NoteableType int

const (
	NoteableIssue NoteableType = iota + 1
	NoteableMergeRequest
	NoteableSnippet
)

var noteableTypeTable = enumTable[NoteableType]{
	NoteableIssue:        "issues",
	NoteableMergeRequest: "merge_requests",
	NoteableSnippet:      "snippets",
}

func (v NoteableType) String() string       { return noteableTypeTable.name(v) }
func (v NoteableType) wire() (string, bool) { return noteableTypeTable.lookup(v) }
func (v NoteableType) unset() bool          { return v == 0 }

// MilestoneState: фильтр состояния вех.
type MilestoneState int

const (
	MilestoneStateActive MilestoneState = iota + 1
	MilestoneStateClosed
)

var milestoneStateTable = enumTable[MilestoneState]{
	MilestoneStateActive: "active",
	MilestoneStateClosed: "closed",
}

func (v MilestoneState) String() string       { return milestoneStateTable.name(v) }
func (v MilestoneState) wire() (string, bool) { return milestoneStateTable.lookup(v) }
func (v MilestoneState) unset() bool          { return v == 0 }

// Разбор строковых значений (флаги командной строки, конфигурация).
// Пустая строка означает "не задано" и не является ошибкой.

func ParseSortOrder(s string) (SortOrder, error) { return sortOrderTable.parse("sort", s) }

func ParseOrderBy(s string) (OrderBy, error) { return orderByTable.parse("order_by", s) }

func ParseProjectOrderBy(s string) (ProjectOrderBy, error) {
	return projectOrderByTable.parse("order_by", s)
}

// ParseVisibility принимает имя уровня: private, internal или public.
func ParseVisibility(s string) (VisibilityLevel, error) {
	return visibilityLevelNames.parse("visibility", s)
}

func ParseIssueState(s string) (IssueState, error) { return issueStateTable.parse("state", s) }

func ParseMergeRequestState(s string) (MergeRequestState, error) {
	return mergeRequestStateTable.parse("state", s)
}

func ParsePipelineScope(s string) (PipelineScope, error) { return pipelineScopeTable.parse("scope", s) }

func ParsePipelineStatus(s string) (PipelineStatus, error) {
	return pipelineStatusTable.parse("status", s)
}
