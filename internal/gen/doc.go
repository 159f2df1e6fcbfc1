// Package gen turns analyzed declarations into generated mock files.
//
// Generation runs in two steps. Synthesize runs the engine for every
// declaration concurrently, each with its own random source derived from
// the run seed, then checks the mock entry points for reference cycles and
// drops the artifacts of declarations whose peers produced none. Generate
// renders one file per package with text/template and go/format:
//
//	func MockOrder() Order {
//		return Order{ID: 0, Status: StatusPaid, Items: MockOrderItemBatch()}
//	}
//
//	func MockOrderBatch() []Order {
//		return []Order{
//			Order{...},
//			Order{...},
//		}
//	}
//
// Generic helpers the expressions call (mockPtr, mockSeeded, mockURL) are
// emitted once per file.
package gen
