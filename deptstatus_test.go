package fedcal

import "testing"

func TestDeptStatusOrdering(t *testing.T) {
	if !(Shutdown < ApropsGap && ApropsGap < ContRes && ContRes < ApropsCROrFull && ApropsCROrFull < FullApprops) {
		t.Error("DeptStatus values should order Shutdown < ApropsGap < ContRes < ApropsCROrFull < FullApprops")
	}
	if FutureUnknown >= Shutdown {
		t.Error("FutureUnknown should order below every resolved status")
	}
}

func TestDeptStatusFunded(t *testing.T) {
	funded := []DeptStatus{FullApprops, ContRes, ApropsCROrFull}
	for _, s := range funded {
		if !s.IsFunded() {
			t.Errorf("%s should be funded", s)
		}
	}
	unfunded := []DeptStatus{ApropsGap, Shutdown}
	for _, s := range unfunded {
		if !s.IsUnfunded() {
			t.Errorf("%s should be unfunded", s)
		}
	}
}

func TestDeptStatusFromCode(t *testing.T) {
	cases := map[string]DeptStatus{
		"FA": FullApprops, "ND": ApropsCROrFull, "CR": ContRes,
		"GAP": ApropsGap, "SDN": Shutdown, "FUT": FutureUnknown,
	}
	for code, want := range cases {
		got, err := DeptStatusFromCode(code)
		if err != nil || got != want {
			t.Errorf("DeptStatusFromCode(%q) = %v, %v; want %v", code, got, err, want)
		}
	}
	if _, err := DeptStatusFromCode("XX"); err == nil {
		t.Error("expected an error for an unrecognized status code")
	}
}

func TestDeptStatusReverseLookups(t *testing.T) {
	t.Run("ByVariant", func(t *testing.T) {
		s, err := DeptStatusByVariant("shutdown")
		if err != nil || s != Shutdown {
			t.Errorf("DeptStatusByVariant(shutdown) = %v, %v", s, err)
		}
	})
	t.Run("ByApprops", func(t *testing.T) {
		s, err := DeptStatusByApprops("continuing resolution")
		if err != nil || s != ContRes {
			t.Errorf("DeptStatusByApprops(...) = %v, %v", s, err)
		}
	})
	t.Run("ByOps", func(t *testing.T) {
		s, err := DeptStatusByOps("open")
		if err != nil || s != FullApprops {
			t.Errorf("DeptStatusByOps(open) = %v, %v", s, err)
		}
	})
	t.Run("BySimple", func(t *testing.T) {
		s, err := DeptStatusBySimple("shutdown")
		if err != nil || s != Shutdown {
			t.Errorf("DeptStatusBySimple(shutdown) = %v, %v", s, err)
		}
	})
	t.Run("ByOrdinal", func(t *testing.T) {
		s, err := DeptStatusByOrdinal(int(FullApprops))
		if err != nil || s != FullApprops {
			t.Errorf("DeptStatusByOrdinal(...) = %v, %v", s, err)
		}
	})
}
