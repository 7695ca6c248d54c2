package yougile

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// AttemptObserver is invoked once per transport attempt with the attempt
// number (starting at 1), the outcome kind as a short string, and the delay
// the gateway will sleep before the next attempt (zero on terminal outcomes).
// The client works without one.
type AttemptObserver func(attempt int, outcome string, delay time.Duration)

// Config represents client configuration for building a yougile.Client.
//
// Authentication either uses a pre-issued APIKey directly or, when APIKey is
// empty, the Login/Password/CompanyID triple: the client lists the account's
// companies, confirms CompanyID is among them, and requests a new API key
// scoped to that company. Expired keys are detected reactively from 401
// responses; there is no proactive expiry timer.
type Config struct {
	// BaseURL is the API origin, e.g. "https://yougile.com". The "/api-v2"
	// prefix is owned by the client and must not be included.
	BaseURL string

	// Login is the account email used for the authentication sequence.
	Login string
	// Password is the account password used with Login.
	Password string
	// CompanyID selects the company the issued key is scoped to.
	CompanyID string
	// APIKey, when set, is used directly as the bearer credential and the
	// login sequence is skipped until the key is rejected.
	APIKey string

	// HTTPTimeout bounds each transport attempt. Defaults to 30s.
	HTTPTimeout time.Duration
	// MaxAttempts caps retries of transient failures per logical call.
	MaxAttempts int
	// RetryWaitMin is the backoff base delay. Defaults to 500ms.
	RetryWaitMin time.Duration
	// RetryWaitMax caps the backoff delay. Defaults to 30s.
	RetryWaitMax time.Duration

	// RateLimit / RateWindow bound admitted requests per trailing window.
	// Defaults to 50 per 60s, the documented server quota.
	RateLimit  int
	RateWindow time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging when Logger is set.
	Debug bool
	// Logger is an optional structured logger.
	Logger Logger
	// Observer is an optional per-attempt progress callback.
	Observer AttemptObserver

	// Cache configures the optional read-through cache for GET responses.
	Cache *CacheConfig
}

// ListOptions is the common limit/offset window for paged listings.
type ListOptions struct {
	Limit  int
	Offset int
}

// Values encodes the options as query parameters.
func (o *ListOptions) Values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	if o.Offset > 0 {
		values.Set("offset", strconv.Itoa(o.Offset))
	}

	return values
}

// TaskListOptions filters task listings.
type TaskListOptions struct {
	ListOptions

	ColumnID       string
	AssignedTo     string
	Title          string
	IncludeDeleted bool
}

// Values encodes the options as query parameters.
func (o *TaskListOptions) Values() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.Values()

	if o.ColumnID != "" {
		values.Set("columnId", o.ColumnID)
	}

	if o.AssignedTo != "" {
		values.Set("assignedTo", o.AssignedTo)
	}

	if o.Title != "" {
		values.Set("title", o.Title)
	}

	if o.IncludeDeleted {
		values.Set("includeDeleted", "true")
	}

	return values
}

// BoardListOptions filters board listings.
type BoardListOptions struct {
	ListOptions

	ProjectID string
	Title     string
}

// Values encodes the options as query parameters.
func (o *BoardListOptions) Values() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.Values()

	if o.ProjectID != "" {
		values.Set("projectId", o.ProjectID)
	}

	if o.Title != "" {
		values.Set("title", o.Title)
	}

	return values
}

// ColumnListOptions filters column listings.
type ColumnListOptions struct {
	ListOptions

	BoardID string
	Title   string
}

// Values encodes the options as query parameters.
func (o *ColumnListOptions) Values() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.Values()

	if o.BoardID != "" {
		values.Set("boardId", o.BoardID)
	}

	if o.Title != "" {
		values.Set("title", o.Title)
	}

	return values
}

// AuthClient covers login-time operations: company discovery and API keys.
type AuthClient interface {
	Companies(ctx context.Context, opts *ListOptions) (*Page[AuthCompany], error)
	Keys(ctx context.Context, companyID string) ([]APIKey, error)
	CreateKey(ctx context.Context, companyID string) (*APIKey, error)
	DeleteKey(ctx context.Context, key string) error
}

// CompanyClient covers company details and settings.
type CompanyClient interface {
	Get(ctx context.Context) (*Company, error)
	Update(ctx context.Context, request *CompanyUpdateRequest) (*Company, error)
}

// ProjectsClient covers projects and their roles.
type ProjectsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Project], error)
	Create(ctx context.Context, request *ProjectCreateRequest) (*ObjectRef, error)
	Get(ctx context.Context, projectID string) (*Project, error)
	Update(ctx context.Context, projectID string, request *ProjectUpdateRequest) (*ObjectRef, error)

	ListRoles(ctx context.Context, projectID string) (*Page[ProjectRole], error)
	CreateRole(ctx context.Context, projectID string, request *ProjectRoleRequest) (*ObjectRef, error)
	GetRole(ctx context.Context, projectID, roleID string) (*ProjectRole, error)
	UpdateRole(ctx context.Context, projectID, roleID string, request *ProjectRoleRequest) (*ObjectRef, error)
	DeleteRole(ctx context.Context, projectID, roleID string) error
}

// BoardsClient covers boards.
type BoardsClient interface {
	List(ctx context.Context, opts *BoardListOptions) (*Page[Board], error)
	Create(ctx context.Context, request *BoardCreateRequest) (*ObjectRef, error)
	Get(ctx context.Context, boardID string) (*Board, error)
	Update(ctx context.Context, boardID string, request *BoardUpdateRequest) (*ObjectRef, error)
}

// ColumnsClient covers board columns.
type ColumnsClient interface {
	List(ctx context.Context, opts *ColumnListOptions) (*Page[Column], error)
	Create(ctx context.Context, request *ColumnCreateRequest) (*ObjectRef, error)
	Get(ctx context.Context, columnID string) (*Column, error)
	Update(ctx context.Context, columnID string, request *ColumnUpdateRequest) (*ObjectRef, error)
}

// TasksClient covers tasks, the compact task list, and chat subscribers.
type TasksClient interface {
	List(ctx context.Context, opts *TaskListOptions) (*Page[Task], error)
	ListCompact(ctx context.Context, opts *TaskListOptions) (*Page[Task], error)
	Create(ctx context.Context, request *TaskCreateRequest) (*ObjectRef, error)
	Get(ctx context.Context, taskID string) (*Task, error)
	Update(ctx context.Context, taskID string, request *TaskUpdateRequest) (*ObjectRef, error)

	ChatSubscribers(ctx context.Context, taskID string) ([]User, error)
	SetChatSubscribers(ctx context.Context, taskID string, userIDs []string) error
}

// StringStickersClient covers string stickers and their states.
type StringStickersClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[StringSticker], error)
	Create(ctx context.Context, request *StringStickerRequest) (*ObjectRef, error)
	Get(ctx context.Context, stickerID string) (*StringSticker, error)
	Update(ctx context.Context, stickerID string, request *StringStickerRequest) (*ObjectRef, error)

	GetState(ctx context.Context, stickerID, stateID string) (*StickerState, error)
	CreateState(ctx context.Context, stickerID string, request *StickerStateRequest) (*ObjectRef, error)
	UpdateState(ctx context.Context, stickerID, stateID string, request *StickerStateRequest) (*ObjectRef, error)
}

// SprintStickersClient covers sprint stickers and their states.
type SprintStickersClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[SprintSticker], error)
	Create(ctx context.Context, request *SprintStickerRequest) (*ObjectRef, error)
	Get(ctx context.Context, stickerID string) (*SprintSticker, error)
	Update(ctx context.Context, stickerID string, request *SprintStickerRequest) (*ObjectRef, error)

	GetState(ctx context.Context, stickerID, stateID string) (*SprintStickerState, error)
	CreateState(ctx context.Context, stickerID string, request *SprintStateRequest) (*ObjectRef, error)
	UpdateState(ctx context.Context, stickerID, stateID string, request *SprintStateRequest) (*ObjectRef, error)
}

// ChatsClient covers group chats and chat messages.
type ChatsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[GroupChat], error)
	Create(ctx context.Context, request *GroupChatRequest) (*ObjectRef, error)
	Get(ctx context.Context, chatID string) (*GroupChat, error)
	Update(ctx context.Context, chatID string, request *GroupChatRequest) (*ObjectRef, error)

	Messages(ctx context.Context, chatID string, opts *ListOptions) (*Page[ChatMessage], error)
	SendMessage(ctx context.Context, chatID string, request *ChatMessageRequest) (*ObjectRef, error)
	GetMessage(ctx context.Context, chatID, messageID string) (*ChatMessage, error)
	UpdateMessage(ctx context.Context, chatID, messageID string, request *ChatMessageRequest) (*ObjectRef, error)
}

// UsersClient covers company members.
type UsersClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[User], error)
	Invite(ctx context.Context, request *UserInviteRequest) (*ObjectRef, error)
	Get(ctx context.Context, userID string) (*User, error)
	Update(ctx context.Context, userID string, request *UserUpdateRequest) (*ObjectRef, error)
	Delete(ctx context.Context, userID string) error
}

// DepartmentsClient covers departments.
type DepartmentsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Department], error)
	Create(ctx context.Context, request *DepartmentRequest) (*ObjectRef, error)
	Get(ctx context.Context, departmentID string) (*Department, error)
	Update(ctx context.Context, departmentID string, request *DepartmentRequest) (*ObjectRef, error)
}

// WebhooksClient covers webhook subscriptions.
type WebhooksClient interface {
	List(ctx context.Context) ([]Webhook, error)
	Create(ctx context.Context, request *WebhookRequest) (*ObjectRef, error)
	Update(ctx context.Context, webhookID string, request *WebhookRequest) (*ObjectRef, error)
}

// FilesClient covers file registration.
type FilesClient interface {
	Upload(ctx context.Context, request *FileUploadRequest) (*FileUploadResponse, error)
}

// Client is the full YouGile API surface.
type Client interface {
	Auth() AuthClient
	Company() CompanyClient
	Projects() ProjectsClient
	Boards() BoardsClient
	Columns() ColumnsClient
	Tasks() TasksClient
	StringStickers() StringStickersClient
	SprintStickers() SprintStickersClient
	Chats() ChatsClient
	Users() UsersClient
	Departments() DepartmentsClient
	Webhooks() WebhooksClient
	Files() FilesClient
}
