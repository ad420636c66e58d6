// Copyright 2024 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package multimap

import (
	"slices"
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/matrixorigin/mohash/pkg/container/hashtable"
)

func TestHashMultimap(t *testing.T) {
	Convey("Given a multimap of tags", t, func() {
		mm := New[string, int](hashtable.WithCapacity(3))
		So(mm.IsEmpty(), ShouldBeTrue)
		So(mm.Get("a"), ShouldBeEmpty)

		mm.Put("a", 1)
		mm.Put("a", 2)
		mm.Put("a", 1)
		mm.Put("b", 3)

		Convey("Size counts every pair", func() {
			So(mm.Size(), ShouldEqual, 4)
			So(mm.KeyCount(), ShouldEqual, 2)
			So(mm.Get("a"), ShouldResemble, []int{1, 2, 1})
		})

		Convey("Get returns a copy", func() {
			vs := mm.Get("a")
			vs[0] = 100
			So(mm.Get("a")[0], ShouldEqual, 1)
		})

		Convey("Remove drops a single occurrence", func() {
			So(mm.Remove("a", 1), ShouldBeTrue)
			So(mm.Get("a"), ShouldResemble, []int{2, 1})
			So(mm.Remove("a", 7), ShouldBeFalse)
			So(mm.Remove("z", 1), ShouldBeFalse)
			So(mm.Size(), ShouldEqual, 3)

			Convey("and the key goes away with its last value", func() {
				So(mm.Remove("b", 3), ShouldBeTrue)
				So(mm.KeyCount(), ShouldEqual, 1)
				So(mm.Get("b"), ShouldBeEmpty)
			})
		})

		Convey("RemoveAll returns every value", func() {
			So(mm.RemoveAll("a"), ShouldResemble, []int{1, 2, 1})
			So(mm.RemoveAll("a"), ShouldBeNil)
			So(mm.Size(), ShouldEqual, 1)
		})

		Convey("Entries flattens the lists", func() {
			var pairs []string
			for e := range mm.Entries() {
				pairs = append(pairs, e.Key()+string(rune('0'+e.Value())))
			}
			sort.Strings(pairs)
			So(pairs, ShouldResemble, []string{"a1", "a1", "a2", "b3"})

			keys := slices.Collect(mm.Keys())
			sort.Strings(keys)
			So(keys, ShouldResemble, []string{"a", "b"})
		})
	})
}
