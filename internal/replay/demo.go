package replay

// DemoCapacity is the cache size DemoScript is written for.
const DemoCapacity = 5

// DemoScript inserts a, b, c and d one at a time and reads every key present
// after each insert, starting from an empty cache.
const DemoScript = `# empty cache
status
get a

# add a = 1
set a 1
get a

# add b = 2
set b 2
get b
get a
get b

# add c = 3
set c 3
get c
get a
get b
get c

# add d = 4
set d 4
get d
get a
get b
get c
get d
`
