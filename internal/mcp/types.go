package mcp

// OpenDialogInput is the input for the open_dialog tool.
type OpenDialogInput struct {
	Key    string `json:"key" jsonschema:"required,Unique dialog key. Opening an already-open key is a no-op and returns the existing position."`
	Preset string `json:"preset,omitempty" jsonschema:"Named dialog preset from config supplying width/height/title. Explicit fields override preset values."`
	Width  int    `json:"width,omitempty" jsonschema:"Dialog width in pixels. Required unless a preset is given."`
	Height int    `json:"height,omitempty" jsonschema:"Dialog height in pixels. Required unless a preset is given."`
	Title  string `json:"title,omitempty" jsonschema:"Window title for the dialog."`
}

// OpenDialogOutput is the output for the open_dialog tool.
type OpenDialogOutput struct {
	Key         string `json:"key"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	AlreadyOpen bool   `json:"already_open,omitempty"`
}

// GetDialogInput is the input for the get_dialog tool.
type GetDialogInput struct {
	Key string `json:"key" jsonschema:"required,Dialog key to look up"`
}

// GetDialogOutput is the output for the get_dialog tool.
type GetDialogOutput struct {
	Key    string `json:"key"`
	Found  bool   `json:"found"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ListDialogsInput is the input for the list_dialogs tool.
type ListDialogsInput struct{}

// DialogInfo describes a single open dialog.
type DialogInfo struct {
	Key    string `json:"key"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ListDialogsOutput is the output for the list_dialogs tool.
type ListDialogsOutput struct {
	Dialogs []DialogInfo `json:"dialogs"`
}

// CloseDialogInput is the input for the close_dialog tool.
type CloseDialogInput struct {
	Key string `json:"key" jsonschema:"required,Dialog key to close"`
}

// CloseDialogOutput is the output for the close_dialog tool.
type CloseDialogOutput struct {
	Closed bool `json:"closed"`
}

// RemoveDialogInput is the input for the remove_dialog tool.
type RemoveDialogInput struct {
	Key string `json:"key" jsonschema:"required,Dialog key to forget without closing"`
}

// RemoveDialogOutput is the output for the remove_dialog tool.
type RemoveDialogOutput struct {
	Removed bool `json:"removed"`
}

// RefreshDialogInput is the input for the refresh_dialog tool.
type RefreshDialogInput struct {
	Key string `json:"key" jsonschema:"required,Dialog key to refresh"`
}

// RefreshDialogOutput is the output for the refresh_dialog tool.
type RefreshDialogOutput struct {
	Refreshed bool `json:"refreshed"`
}

// ClearDialogsInput is the input for the clear_dialogs tool.
type ClearDialogsInput struct{}

// ClearDialogsOutput is the output for the clear_dialogs tool.
type ClearDialogsOutput struct {
	Closed int `json:"closed"`
}
