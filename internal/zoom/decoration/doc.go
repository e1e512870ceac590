// Package decoration holds the hidden-range bookkeeping for the zoom
// feature: an ordered set of tagged document spans (hidden ranges plus at
// most one breadcrumb header) that can be remapped through document edits
// without ever erroring.
package decoration
