// Package i18n holds the message catalog for all user-facing text: the two
// verdict lines and the diagnostic summaries. Message keys are the English
// text; Brazilian Portuguese is the default output language.
package i18n
