package yougile

// Paging describes the window of a paged list response.
type Paging struct {
	Count  int  `json:"count"  yaml:"count"`
	Limit  int  `json:"limit"  yaml:"limit"`
	Offset int  `json:"offset" yaml:"offset"`
	Next   bool `json:"next"   yaml:"next"`
}

// Page is a paged list response as the API returns it.
type Page[T any] struct {
	Paging  Paging `json:"paging"  yaml:"paging"`
	Content []T    `json:"content" yaml:"content"`
}

// ObjectRef is the minimal body returned by create and delete operations.
type ObjectRef struct {
	ID string `json:"id" yaml:"id"`
}

// AuthCompany is one entry of the company listing returned during login.
type AuthCompany struct {
	ID      string `json:"id"                yaml:"id"`
	Name    string `json:"name"              yaml:"name"`
	IsAdmin bool   `json:"isAdmin,omitempty" yaml:"isAdmin,omitempty"`
}

// APIKey describes an issued API key.
type APIKey struct {
	Key       string `json:"key"                 yaml:"key"`
	CompanyID string `json:"companyId,omitempty" yaml:"companyId,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Deleted   bool   `json:"deleted,omitempty"   yaml:"deleted,omitempty"`
}

// Company holds company details and settings.
type Company struct {
	ID        string `json:"id"                  yaml:"id"`
	Title     string `json:"title"               yaml:"title"`
	Timestamp int64  `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Deleted   bool   `json:"deleted,omitempty"   yaml:"deleted,omitempty"`
}

// Project is a YouGile project. Users maps user ID to role name.
type Project struct {
	ID        string            `json:"id"                  yaml:"id"`
	Title     string            `json:"title"               yaml:"title"`
	Users     map[string]string `json:"users,omitempty"     yaml:"users,omitempty"`
	Timestamp int64             `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Deleted   bool              `json:"deleted,omitempty"   yaml:"deleted,omitempty"`
}

// ProjectCreateRequest creates a project.
type ProjectCreateRequest struct {
	Title string            `json:"title"           yaml:"title"`
	Users map[string]string `json:"users,omitempty" yaml:"users,omitempty"`
}

// ProjectUpdateRequest updates a project. Zero-valued fields are left as-is.
type ProjectUpdateRequest struct {
	Title   string            `json:"title,omitempty"   yaml:"title,omitempty"`
	Users   map[string]string `json:"users,omitempty"   yaml:"users,omitempty"`
	Deleted *bool             `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}

// ProjectRole is a per-project permission role.
type ProjectRole struct {
	ID          string                 `json:"id"                    yaml:"id"`
	Name        string                 `json:"name"                  yaml:"name"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Permissions map[string]interface{} `json:"permissions,omitempty" yaml:"permissions,omitempty"`
}

// ProjectRoleRequest creates or updates a project role.
type ProjectRoleRequest struct {
	Name        string                 `json:"name"                  yaml:"name"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Permissions map[string]interface{} `json:"permissions,omitempty" yaml:"permissions,omitempty"`
}

// Board is a kanban board inside a project.
type Board struct {
	ID        string                 `json:"id"                  yaml:"id"`
	Title     string                 `json:"title"               yaml:"title"`
	ProjectID string                 `json:"projectId"           yaml:"projectId"`
	Stickers  map[string]interface{} `json:"stickers,omitempty"  yaml:"stickers,omitempty"`
	Deleted   bool                   `json:"deleted,omitempty"   yaml:"deleted,omitempty"`
}

// BoardCreateRequest creates a board.
type BoardCreateRequest struct {
	Title     string                 `json:"title"              yaml:"title"`
	ProjectID string                 `json:"projectId"          yaml:"projectId"`
	Stickers  map[string]interface{} `json:"stickers,omitempty" yaml:"stickers,omitempty"`
}

// BoardUpdateRequest updates a board.
type BoardUpdateRequest struct {
	Title     string                 `json:"title,omitempty"     yaml:"title,omitempty"`
	ProjectID string                 `json:"projectId,omitempty" yaml:"projectId,omitempty"`
	Stickers  map[string]interface{} `json:"stickers,omitempty"  yaml:"stickers,omitempty"`
	Deleted   *bool                  `json:"deleted,omitempty"   yaml:"deleted,omitempty"`
}

// Column is a board column.
type Column struct {
	ID      string `json:"id"                yaml:"id"`
	Title   string `json:"title"             yaml:"title"`
	Color   int    `json:"color,omitempty"   yaml:"color,omitempty"`
	BoardID string `json:"boardId"           yaml:"boardId"`
	Deleted bool   `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}

// ColumnCreateRequest creates a column.
type ColumnCreateRequest struct {
	Title   string `json:"title"           yaml:"title"`
	BoardID string `json:"boardId"         yaml:"boardId"`
	Color   int    `json:"color,omitempty" yaml:"color,omitempty"`
}

// ColumnUpdateRequest updates a column.
type ColumnUpdateRequest struct {
	Title   string `json:"title,omitempty"   yaml:"title,omitempty"`
	BoardID string `json:"boardId,omitempty" yaml:"boardId,omitempty"`
	Color   int    `json:"color,omitempty"   yaml:"color,omitempty"`
	Deleted *bool  `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}

// Deadline is the deadline sticker of a task.
type Deadline struct {
	Deadline     int64 `json:"deadline"               yaml:"deadline"`
	StartDate    int64 `json:"startDate,omitempty"    yaml:"startDate,omitempty"`
	WithTime     bool  `json:"withTime,omitempty"     yaml:"withTime,omitempty"`
	BlockedPoint bool  `json:"blockedPoints,omitempty" yaml:"blockedPoints,omitempty"`
}

// TimeTracking is the time-tracking sticker of a task.
type TimeTracking struct {
	Plan int `json:"plan,omitempty" yaml:"plan,omitempty"`
	Work int `json:"work,omitempty" yaml:"work,omitempty"`
}

// Task is a YouGile task. Stickers maps sticker ID to state ID.
type Task struct {
	ID           string            `json:"id"                     yaml:"id"`
	Title        string            `json:"title"                  yaml:"title"`
	ColumnID     string            `json:"columnId,omitempty"     yaml:"columnId,omitempty"`
	Description  string            `json:"description,omitempty"  yaml:"description,omitempty"`
	Archived     bool              `json:"archived,omitempty"     yaml:"archived,omitempty"`
	Completed    bool              `json:"completed,omitempty"    yaml:"completed,omitempty"`
	Deleted      bool              `json:"deleted,omitempty"      yaml:"deleted,omitempty"`
	Subtasks     []string          `json:"subtasks,omitempty"     yaml:"subtasks,omitempty"`
	Assigned     []string          `json:"assigned,omitempty"     yaml:"assigned,omitempty"`
	CreatedBy    string            `json:"createdBy,omitempty"    yaml:"createdBy,omitempty"`
	Deadline     *Deadline         `json:"deadline,omitempty"     yaml:"deadline,omitempty"`
	TimeTracking *TimeTracking     `json:"timeTracking,omitempty" yaml:"timeTracking,omitempty"`
	Checklists   []Checklist       `json:"checklists,omitempty"   yaml:"checklists,omitempty"`
	Stickers     map[string]string `json:"stickers,omitempty"     yaml:"stickers,omitempty"`
	Timestamp    int64             `json:"timestamp,omitempty"    yaml:"timestamp,omitempty"`
}

// Checklist is a named group of checklist items on a task.
type Checklist struct {
	Title string          `json:"title" yaml:"title"`
	Items []ChecklistItem `json:"items" yaml:"items"`
}

// ChecklistItem is one entry of a checklist.
type ChecklistItem struct {
	Title       string `json:"title"                 yaml:"title"`
	IsCompleted bool   `json:"isCompleted,omitempty" yaml:"isCompleted,omitempty"`
}

// TaskCreateRequest creates a task.
type TaskCreateRequest struct {
	Title        string            `json:"title"                  yaml:"title"`
	ColumnID     string            `json:"columnId,omitempty"     yaml:"columnId,omitempty"`
	Description  string            `json:"description,omitempty"  yaml:"description,omitempty"`
	Subtasks     []string          `json:"subtasks,omitempty"     yaml:"subtasks,omitempty"`
	Assigned     []string          `json:"assigned,omitempty"     yaml:"assigned,omitempty"`
	Deadline     *Deadline         `json:"deadline,omitempty"     yaml:"deadline,omitempty"`
	TimeTracking *TimeTracking     `json:"timeTracking,omitempty" yaml:"timeTracking,omitempty"`
	Checklists   []Checklist       `json:"checklists,omitempty"   yaml:"checklists,omitempty"`
	Stickers     map[string]string `json:"stickers,omitempty"     yaml:"stickers,omitempty"`
}

// TaskUpdateRequest updates a task.
type TaskUpdateRequest struct {
	Title        string            `json:"title,omitempty"        yaml:"title,omitempty"`
	ColumnID     string            `json:"columnId,omitempty"     yaml:"columnId,omitempty"`
	Description  string            `json:"description,omitempty"  yaml:"description,omitempty"`
	Archived     *bool             `json:"archived,omitempty"     yaml:"archived,omitempty"`
	Completed    *bool             `json:"completed,omitempty"    yaml:"completed,omitempty"`
	Deleted      *bool             `json:"deleted,omitempty"      yaml:"deleted,omitempty"`
	Subtasks     []string          `json:"subtasks,omitempty"     yaml:"subtasks,omitempty"`
	Assigned     []string          `json:"assigned,omitempty"     yaml:"assigned,omitempty"`
	Deadline     *Deadline         `json:"deadline,omitempty"     yaml:"deadline,omitempty"`
	TimeTracking *TimeTracking     `json:"timeTracking,omitempty" yaml:"timeTracking,omitempty"`
	Checklists   []Checklist       `json:"checklists,omitempty"   yaml:"checklists,omitempty"`
	Stickers     map[string]string `json:"stickers,omitempty"     yaml:"stickers,omitempty"`
}

// StickerState is one selectable state of a string sticker.
type StickerState struct {
	ID    string `json:"id"              yaml:"id"`
	Name  string `json:"name"            yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// StringSticker is a custom text sticker with a set of states.
type StringSticker struct {
	ID      string         `json:"id"                yaml:"id"`
	Name    string         `json:"name"              yaml:"name"`
	Icon    string         `json:"icon,omitempty"    yaml:"icon,omitempty"`
	States  []StickerState `json:"states,omitempty"  yaml:"states,omitempty"`
	Deleted bool           `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}

// StringStickerRequest creates or updates a string sticker.
type StringStickerRequest struct {
	Name    string `json:"name,omitempty"    yaml:"name,omitempty"`
	Icon    string `json:"icon,omitempty"    yaml:"icon,omitempty"`
	Deleted *bool  `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}

// StickerStateRequest creates or updates a sticker state.
type StickerStateRequest struct {
	Name  string `json:"name"            yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// SprintStickerState is one state of a sprint sticker, bounded in time.
type SprintStickerState struct {
	ID    string `json:"id"              yaml:"id"`
	Name  string `json:"name"            yaml:"name"`
	Begin int64  `json:"begin,omitempty" yaml:"begin,omitempty"`
	End   int64  `json:"end,omitempty"   yaml:"end,omitempty"`
}

// SprintSticker is a sprint sticker with dated states.
type SprintSticker struct {
	ID      string               `json:"id"                yaml:"id"`
	Name    string               `json:"name"              yaml:"name"`
	States  []SprintStickerState `json:"states,omitempty"  yaml:"states,omitempty"`
	Deleted bool                 `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}

// SprintStickerRequest creates or updates a sprint sticker.
type SprintStickerRequest struct {
	Name    string `json:"name,omitempty"    yaml:"name,omitempty"`
	Deleted *bool  `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}

// SprintStateRequest creates or updates a sprint sticker state.
type SprintStateRequest struct {
	Name  string `json:"name"            yaml:"name"`
	Begin int64  `json:"begin,omitempty" yaml:"begin,omitempty"`
	End   int64  `json:"end,omitempty"   yaml:"end,omitempty"`
}

// GroupChat is a standalone group chat. Users maps user ID to role.
type GroupChat struct {
	ID      string            `json:"id"                yaml:"id"`
	Title   string            `json:"title"             yaml:"title"`
	Users   map[string]string `json:"users,omitempty"   yaml:"users,omitempty"`
	Deleted bool              `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}

// GroupChatRequest creates or updates a group chat.
type GroupChatRequest struct {
	Title   string            `json:"title,omitempty"   yaml:"title,omitempty"`
	Users   map[string]string `json:"users,omitempty"   yaml:"users,omitempty"`
	Deleted *bool             `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}

// ChatMessage is one message in a task or group chat.
type ChatMessage struct {
	ID         string `json:"id"                   yaml:"id"`
	FromUserID string `json:"fromUserId,omitempty" yaml:"fromUserId,omitempty"`
	Text       string `json:"text"                 yaml:"text"`
	TextHTML   string `json:"textHtml,omitempty"   yaml:"textHtml,omitempty"`
	Label      string `json:"label,omitempty"      yaml:"label,omitempty"`
	Timestamp  int64  `json:"timestamp,omitempty"  yaml:"timestamp,omitempty"`
	Deleted    bool   `json:"deleted,omitempty"    yaml:"deleted,omitempty"`
}

// ChatMessageRequest sends or edits a chat message.
type ChatMessageRequest struct {
	Text     string `json:"text,omitempty"     yaml:"text,omitempty"`
	TextHTML string `json:"textHtml,omitempty" yaml:"textHtml,omitempty"`
	Label    string `json:"label,omitempty"    yaml:"label,omitempty"`
}

// User is a company member.
type User struct {
	ID           string `json:"id"                     yaml:"id"`
	Email        string `json:"email"                  yaml:"email"`
	IsAdmin      bool   `json:"isAdmin,omitempty"      yaml:"isAdmin,omitempty"`
	RealName     string `json:"realName,omitempty"     yaml:"realName,omitempty"`
	Status       string `json:"status,omitempty"       yaml:"status,omitempty"`
	LastActivity int64  `json:"lastActivity,omitempty" yaml:"lastActivity,omitempty"`
}

// UserInviteRequest invites a user into the company.
type UserInviteRequest struct {
	Email   string `json:"email"             yaml:"email"`
	IsAdmin bool   `json:"isAdmin,omitempty" yaml:"isAdmin,omitempty"`
}

// UserUpdateRequest updates a user's company role.
type UserUpdateRequest struct {
	IsAdmin *bool `json:"isAdmin,omitempty" yaml:"isAdmin,omitempty"`
}

// Department groups users. Users maps user ID to role.
type Department struct {
	ID       string            `json:"id"                 yaml:"id"`
	Title    string            `json:"title"              yaml:"title"`
	ParentID string            `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Users    map[string]string `json:"users,omitempty"    yaml:"users,omitempty"`
	Deleted  bool              `json:"deleted,omitempty"  yaml:"deleted,omitempty"`
}

// DepartmentRequest creates or updates a department.
type DepartmentRequest struct {
	Title    string            `json:"title,omitempty"    yaml:"title,omitempty"`
	ParentID string            `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Users    map[string]string `json:"users,omitempty"    yaml:"users,omitempty"`
	Deleted  *bool             `json:"deleted,omitempty"  yaml:"deleted,omitempty"`
}

// Webhook is a subscription to API events.
type Webhook struct {
	ID       string `json:"id"                 yaml:"id"`
	URL      string `json:"url"                yaml:"url"`
	Event    string `json:"event"              yaml:"event"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Deleted  bool   `json:"deleted,omitempty"  yaml:"deleted,omitempty"`
}

// WebhookRequest creates or updates a webhook subscription.
type WebhookRequest struct {
	URL      string `json:"url,omitempty"      yaml:"url,omitempty"`
	Event    string `json:"event,omitempty"    yaml:"event,omitempty"`
	Disabled *bool  `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Deleted  *bool  `json:"deleted,omitempty"  yaml:"deleted,omitempty"`
}

// FileUploadRequest registers a file by URL.
type FileUploadRequest struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url"  yaml:"url"`
}

// FileUploadResponse is the registered file location.
type FileUploadResponse struct {
	URL string `json:"url" yaml:"url"`
}

// CompanyUpdateRequest updates company settings.
type CompanyUpdateRequest struct {
	Title   string `json:"title,omitempty"   yaml:"title,omitempty"`
	Deleted *bool  `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}
