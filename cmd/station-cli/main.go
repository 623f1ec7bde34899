package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DEFAULT_API_URL = "http://localhost:3536"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type step int

const (
	stepChoosingMode step = iota
	stepEnteringHandle
	stepEnteringPassword
	stepAuthenticating
	stepLoadingStations
	stepBrowsingStations
	stepEnteringName
	stepEnteringLatitude
	stepEnteringLongitude
	stepEnteringAddress
	stepEnteringPower
	stepEnteringConnector
	stepCreating
)

var modes = []string{"Login", "Register"}

type station struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Address   string  `json:"address"`
	} `json:"location"`
	Status        string  `json:"status"`
	PowerOutput   float64 `json:"powerOutput"`
	ConnectorType string  `json:"connectorType"`
	OwnerID       string  `json:"ownerId"`
}

type draftStation struct {
	name      string
	latitude  float64
	longitude float64
	address   string
	power     float64
	connector string
}

type model struct {
	step         step
	apiURL       string
	cursor       int
	registering  bool
	handle       string
	password     string
	authToken    string
	stations     []station
	draft        draftStation
	currentInput string
	message      string
	quitting     bool
}

type authSuccessMsg struct{ token string }
type stationsMsg []station
type createSuccessMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	apiURL := os.Getenv("STATION_API_URL")
	if apiURL == "" {
		apiURL = DEFAULT_API_URL
	}
	return model{
		step:   stepChoosingMode,
		apiURL: apiURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func authenticate(apiURL string, register bool, handle, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"handle":   handle,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		endpoint := apiURL + "/api/auth/login"
		if register {
			endpoint = apiURL + "/api/auth/register"
		}

		req, _ := http.NewRequest("POST", endpoint, bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("authentication failed (%d): %s", resp.StatusCode, readErrorBody(resp.Body))}
		}

		var result struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.Token == "" {
			return errMsg{fmt.Errorf("server returned no token")}
		}

		return authSuccessMsg{token: result.Token}
	}
}

func fetchStations(apiURL string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		resp, err := client.Get(apiURL + "/api/stations")
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("listing failed (%d): %s", resp.StatusCode, readErrorBody(resp.Body))}
		}

		var stations []station
		if err := json.NewDecoder(resp.Body).Decode(&stations); err != nil {
			return errMsg{fmt.Errorf("invalid station list: %w", err)}
		}

		return stationsMsg(stations)
	}
}

func createStation(apiURL, token string, draft draftStation) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]interface{}{
			"name": draft.name,
			"location": map[string]interface{}{
				"latitude":  draft.latitude,
				"longitude": draft.longitude,
				"address":   draft.address,
			},
			"powerOutput":   draft.power,
			"connectorType": draft.connector,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", apiURL+"/api/stations", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-auth-token", token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("create failed (%d): %s", resp.StatusCode, readErrorBody(resp.Body))}
		}

		return createSuccessMsg{}
	}
}

func readErrorBody(r io.Reader) string {
	body, _ := io.ReadAll(r)
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.step == stepChoosingMode || m.step == stepBrowsingStations {
				m.quitting = true
				return m, tea.Quit
			}
			if m.isTyping() {
				m.currentInput += "q"
			}

		case "up", "k":
			if m.isTyping() {
				if msg.String() == "k" {
					m.currentInput += "k"
				}
			} else if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.isTyping() {
				if msg.String() == "j" {
					m.currentInput += "j"
				}
				break
			}
			switch m.step {
			case stepChoosingMode:
				if m.cursor < len(modes)-1 {
					m.cursor++
				}
			case stepBrowsingStations:
				if m.cursor < len(m.stations)-1 {
					m.cursor++
				}
			}

		case "n":
			if m.step == stepBrowsingStations {
				m.draft = draftStation{}
				m.currentInput = ""
				m.step = stepEnteringName
			} else if m.isTyping() {
				m.currentInput += "n"
			}

		case "r":
			if m.step == stepBrowsingStations {
				m.message = "Refreshing..."
				return m, fetchStations(m.apiURL)
			} else if m.isTyping() {
				m.currentInput += "r"
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.isTyping() && len(msg.String()) == 1 {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepChoosingMode:
				m.registering = modes[m.cursor] == "Register"
				m.currentInput = ""
				m.step = stepEnteringHandle

			case stepEnteringHandle:
				if m.currentInput != "" {
					m.handle = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepAuthenticating
					m.message = "Authenticating..."
					return m, authenticate(m.apiURL, m.registering, m.handle, m.password)
				}

			case stepEnteringName:
				if m.currentInput != "" {
					m.draft.name = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringLatitude
				}

			case stepEnteringLatitude:
				if v, err := strconv.ParseFloat(m.currentInput, 64); err == nil {
					m.draft.latitude = v
					m.currentInput = ""
					m.message = ""
					m.step = stepEnteringLongitude
				} else {
					m.message = errorStyle.Render("latitude must be a number")
				}

			case stepEnteringLongitude:
				if v, err := strconv.ParseFloat(m.currentInput, 64); err == nil {
					m.draft.longitude = v
					m.currentInput = ""
					m.message = ""
					m.step = stepEnteringAddress
				} else {
					m.message = errorStyle.Render("longitude must be a number")
				}

			case stepEnteringAddress:
				m.draft.address = m.currentInput
				m.currentInput = ""
				m.step = stepEnteringPower

			case stepEnteringPower:
				if v, err := strconv.ParseFloat(m.currentInput, 64); err == nil && v >= 0 {
					m.draft.power = v
					m.currentInput = ""
					m.message = ""
					m.step = stepEnteringConnector
				} else {
					m.message = errorStyle.Render("power output must be a number >= 0")
				}

			case stepEnteringConnector:
				if m.currentInput != "" {
					m.draft.connector = m.currentInput
					m.currentInput = ""
					m.step = stepCreating
					m.message = "Creating station..."
					return m, createStation(m.apiURL, m.authToken, m.draft)
				}
			}
		}

	case authSuccessMsg:
		m.authToken = msg.token
		m.step = stepLoadingStations
		m.message = successStyle.Render("Logged in as " + m.handle)
		return m, fetchStations(m.apiURL)

	case stationsMsg:
		m.stations = []station(msg)
		m.cursor = 0
		m.step = stepBrowsingStations

	case createSuccessMsg:
		m.message = successStyle.Render("Station created")
		m.step = stepLoadingStations
		return m, fetchStations(m.apiURL)

	case errMsg:
		m.message = errorStyle.Render(msg.err.Error())
		switch m.step {
		case stepAuthenticating:
			m.step = stepChoosingMode
		case stepCreating, stepLoadingStations:
			m.step = stepBrowsingStations
		}
	}

	return m, nil
}

func (m model) isTyping() bool {
	switch m.step {
	case stepEnteringHandle, stepEnteringPassword, stepEnteringName,
		stepEnteringLatitude, stepEnteringLongitude, stepEnteringAddress,
		stepEnteringPower, stepEnteringConnector:
		return true
	}
	return false
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Charging Station Manager\n\n"))

	switch m.step {
	case stepChoosingMode:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("What would you like to do?\n\n"))
		for i, mode := range modes {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(mode)))
		}
		s.WriteString("\nUse up/down, Enter to select, q to quit\n")

	case stepEnteringHandle:
		s.WriteString(promptStyle.Render("Enter your handle:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter your password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("*", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepAuthenticating, stepLoadingStations, stepCreating:
		s.WriteString(m.message + "\n")

	case stepBrowsingStations:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Charging stations:\n\n"))
		if len(m.stations) == 0 {
			s.WriteString(dimStyle.Render("  (no stations yet)\n"))
		}
		for i, st := range m.stations {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			line := fmt.Sprintf("%s [%s] %.1fkW %s (%.4f, %.4f)",
				st.Name, st.Status, st.PowerOutput, st.ConnectorType,
				st.Location.Latitude, st.Location.Longitude)
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(line)))
		}
		s.WriteString("\nn: new station, r: refresh, q: quit\n")

	case stepEnteringName:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Station name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringLatitude:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Latitude:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringLongitude:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Longitude:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringAddress:
		s.WriteString(promptStyle.Render("Address (optional):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPower:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Power output (kW):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringConnector:
		s.WriteString(promptStyle.Render("Connector type (e.g. CCS, CHAdeMO, Type 2):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
