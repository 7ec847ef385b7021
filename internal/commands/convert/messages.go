package convertcmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const convertDocumentsMessageType = "helpdoc.convert_documents"

// ConvertDocumentsCommand renders the listed Markdown files into HTML
// fragments. Paths are processed in the given order.
type ConvertDocumentsCommand struct {
	// Paths lists the Markdown source files, relative or absolute. Individual
	// paths are not checked here: an unreadable path fails at its turn in
	// the batch, after earlier paths were written.
	Paths []string `json:"paths"`
}

// Type implements command.Message.
func (ConvertDocumentsCommand) Type() string { return convertDocumentsMessageType }

// Validate ensures the command names at least one path.
func (cmd ConvertDocumentsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Paths,
			validation.Required.Error("at least one document path is required"),
		),
	)
}
