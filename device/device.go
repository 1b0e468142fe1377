// Package device performs the control requests against a named MBIM
// network interface. It is thin glue: one datagram socket and the three
// interface ioctls, with the rest of the tool treating it as a
// collaborator.
package device

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/DRuggeri/umbctl/umb"
	"golang.org/x/sys/unix"
)

// ErrNoDevice reports that the named interface does not exist or does not
// answer MBIM control requests. Callers use it to tell a wrong interface
// name apart from a request that genuinely failed.
var ErrNoDevice = errors.New("not an MBIM device")

// ifreq is the interface request header shared with the kernel: the
// interface name plus a pointer to the record being transferred. The
// pointer rides in a sockaddr-sized union, so the struct must measure 32
// bytes or the encoded request numbers will not match the kernel's.
type ifreq struct {
	Name [unix.IFNAMSIZ]byte
	Ifru ifreqUnion
}

type ifreqUnion struct {
	Data unsafe.Pointer
	_    [16 - unsafe.Sizeof(uintptr(0))]byte
}

// Request number encoding, _IOWR('i', n, struct ifreq) style.
const (
	iocOut      = uintptr(0x40000000)
	iocIn       = uintptr(0x80000000)
	iocParmMask = uintptr(0x1fff)
	iocGroup    = uintptr('i')
)

func ioctlReq(dir, num uintptr) uintptr {
	return dir | (unsafe.Sizeof(ifreq{})&iocParmMask)<<16 | iocGroup<<8 | num
}

var (
	reqGetInfo   = ioctlReq(iocIn|iocOut, 190) // get MBIM info
	reqSetParams = ioctlReq(iocIn, 191)        // set MBIM parameters
	reqGetParams = ioctlReq(iocIn|iocOut, 192) // get MBIM parameters
)

// Client issues control requests over one datagram socket. It is not safe
// for concurrent use; the tool runs a single request path per invocation.
type Client struct {
	fd  int
	log *slog.Logger
}

// New opens the socket the interface ioctls ride on.
func New(log *slog.Logger) (*Client, error) {
	if log == nil {
		log = slog.Default()
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open control socket: %w", err)
	}

	return &Client{
		fd:  fd,
		log: log.With("operation", "device"),
	}, nil
}

// Close releases the control socket.
func (c *Client) Close() error {
	return unix.Close(c.fd)
}

func (c *Client) ioctl(ifname string, req uintptr, data unsafe.Pointer) error {
	var ifr ifreq
	if len(ifname) >= len(ifr.Name) {
		return fmt.Errorf("%s: interface name too long", ifname)
	}
	copy(ifr.Name[:], ifname)
	ifr.Ifru.Data = data

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(c.fd), req, uintptr(unsafe.Pointer(&ifr)))
	if errno != 0 {
		if errno == unix.ENXIO || errno == unix.ENODEV || errno == unix.ENOTTY || errno == unix.EOPNOTSUPP {
			return fmt.Errorf("%s: %w", ifname, ErrNoDevice)
		}
		return fmt.Errorf("%s: %w", ifname, errno)
	}
	return nil
}

// GetInfo fetches the current modem and connection status.
func (c *Client) GetInfo(ifname string) (*umb.Info, error) {
	info := &umb.Info{}
	if err := c.ioctl(ifname, reqGetInfo, unsafe.Pointer(info)); err != nil {
		return nil, err
	}
	runtime.KeepAlive(info)
	c.log.Debug("fetched interface info", "interface", ifname)
	return info, nil
}

// GetParameters fetches the current connection parameter record. Updates
// are always applied to a record fetched here so settings the caller did
// not name are preserved on write-back.
func (c *Client) GetParameters(ifname string) (*umb.Parameter, error) {
	param := &umb.Parameter{}
	if err := c.ioctl(ifname, reqGetParams, unsafe.Pointer(param)); err != nil {
		return nil, err
	}
	runtime.KeepAlive(param)
	c.log.Debug("fetched interface parameters", "interface", ifname)
	return param, nil
}

// SetParameters writes a parameter record back to the interface.
func (c *Client) SetParameters(ifname string, param *umb.Parameter) error {
	if err := c.ioctl(ifname, reqSetParams, unsafe.Pointer(param)); err != nil {
		return err
	}
	runtime.KeepAlive(param)
	c.log.Debug("applied interface parameters", "interface", ifname)
	return nil
}
