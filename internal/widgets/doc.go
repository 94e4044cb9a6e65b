// Package widgets provides the form controls built on the component engine:
// a generic expandable Field, MediaField and SelectField built on top of it,
// the Pagination engine used by SelectField, and the Form container that holds
// them in one message.
package widgets
