package colorize

// perUserRange is the number of uids reserved for each device user.
const perUserRange = 100000

// firstAppUID is the lowest uid handed to installed applications.
const firstAppUID = 10000

// UserID returns the device user a uid belongs to.
func UserID(uid int) int {
	return uid / perUserRange
}

// Tracker remembers which uid each announced pid runs as. Entries are never
// removed; process exit is not observed.
type Tracker struct {
	uids map[int]int
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{uids: make(map[int]int)}
}

// Record upserts the uid for pid.
func (t *Tracker) Record(pid, uid int) {
	t.uids[pid] = uid
}

// Lookup returns the uid last recorded for pid.
func (t *Tracker) Lookup(pid int) (int, bool) {
	uid, ok := t.uids[pid]
	return uid, ok
}

// Len reports how many pids are tracked.
func (t *Tracker) Len() int {
	return len(t.uids)
}
