package bluray

import (
	"fmt"
	"os"
)

// Drive identifies a drive letter whose root contains a BDMV directory.
type Drive struct {
	Letter string
	Root   string
}

// AvailableDrives probes A: through Z: for mounted discs with a BDMV
// directory. On non-Windows hosts the probes simply find nothing.
func AvailableDrives() []Drive {
	drives := []Drive{}
	for letter := 'A'; letter <= 'Z'; letter++ {
		root := fmt.Sprintf(`%c:\%s`, letter, bdmvDirName)
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			continue
		}
		drives = append(drives, Drive{Letter: string(letter), Root: root})
	}
	return drives
}
