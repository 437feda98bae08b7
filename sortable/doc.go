// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys and elements in the
// sorted collections of this module.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], [Float], [String]
// and [NaturalString]. These types are designed to work with
// [github.com/amp-labs/amp-sorted/sortedlist.SortedList] and the dictionaries in
// [github.com/amp-labs/amp-sorted/dictionary].
//
// The Sortable interface extends [github.com/amp-labs/amp-sorted/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// [Compare] folds the two into a single three-way comparison, which is what
// the collections use internally.
//
// # Usage
//
//	list := sortedlist.New[sortable.Int]()
//	list.Add(sortable.Int(42))
//	list.Add(sortable.Int(10))
//	list.Add(sortable.Int(25))
//
//	// Elements are kept in sorted order: 10, 25, 42
//	for _, val := range list.Seq() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// Equals and LessThan must describe a total order. The dictionaries rely on
// it to keep keys unique: two keys for which neither is LessThan the other
// but which are not Equals would break lookups.
package sortable
