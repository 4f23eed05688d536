// This file is part of Regwatch.
//
// Regwatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Regwatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Regwatch.  If not, see <https://www.gnu.org/licenses/>.

package inspector

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/regwatch/regwatch/registers"
)

type regDump struct {
	Name  string
	Value uint32
}

type fileDump struct {
	File      string
	Registers []regDump
}

type stateDump struct {
	State          string
	Mode           string
	Notifications  bool
	Subscribers    []int
	Base           string
	ConditionFlags uint32
	Files          []*fileDump
}

// MemViz writes a graphviz description of the simulator state to w. The
// register values are taken from a consistent snapshot of each file.
func (ins *Inspector) MemViz(w io.Writer) error {
	st, mode := ins.state.Condition()

	d := &stateDump{
		State:          st.String(),
		Mode:           mode.String(),
		Notifications:  ins.state.Notifier.NotificationsEnabled(),
		Base:           ins.DisplayBase().String(),
		ConditionFlags: ins.state.Bank.ConditionFlags(),
	}

	for f := range registers.NumFiles {
		vals, err := ins.state.Bank.Snapshot(f)
		if err != nil {
			return err
		}

		fd := &fileDump{File: f.String()}
		for i, r := range ins.state.Bank.Info(f) {
			fd.Registers = append(fd.Registers, regDump{Name: r.Name, Value: vals[i]})
		}

		d.Files = append(d.Files, fd)
		d.Subscribers = append(d.Subscribers, ins.state.Notifier.Subscribers(f))
	}

	memviz.Map(w, d)
	return nil
}
