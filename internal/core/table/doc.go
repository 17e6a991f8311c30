// Package table implements the data-table controllers shared by every list
// screen of the console: a remote list loader, a client-side field filter, a
// sortable date-column controller, a debounced remote search, and a row-action
// dispatcher that serializes mutations per row and triggers a reload on
// success. All of them are generic over the row type; per-entity behaviour is
// supplied as data (field accessors, date keys), not copied code.
package table
